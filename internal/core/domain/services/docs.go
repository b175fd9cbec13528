// Package services provides domain services that decide business outcomes
// spanning more than one aggregate in the staffing system.
//
// The package includes:
//   - AssignmentPolicy: decides the status and schedule an assignment writes,
//     and how a repeated assignment treats an existing application
//
// Services here are pure: they never perform I/O and never mutate the
// aggregates they are given.
package services
