// Package job models the Job aggregate: a unit of work offered by a client
// with either a fixed start/end window or a flexible work period, a worker
// capacity, a publication Status and reward/billing amounts with independent
// tax modes.
//
// Jobs are created by bulk ingestion or duplication. Assignment reads a job
// to decide whether the worker's schedule is locked in immediately
// (LocksScheduleOnAssignment) but never mutates it.
package job
