package services

import (
	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/jobapplication"
)

// Decision tells a fan-out assignment what to do for one (job, worker) pair.
type Decision int

const (
	// Create inserts a new application; none exists yet.
	Create Decision = iota
	// Skip leaves the existing application untouched and counts it as already present.
	Skip
	// Reactivate rewrites the existing row with a fresh outcome.
	Reactivate
)

func (d Decision) String() string {
	switch d {
	case Create:
		return "CREATE"
	case Skip:
		return "SKIP"
	case Reactivate:
		return "REACTIVATE"
	default:
		return "UNKNOWN"
	}
}

// AssignmentPolicy is the pure decision logic shared by every assignment
// entry point.
//
// Business rules:
//   - a job that auto-sets its schedule and is not flexible confirms the
//     assignment at the job's own start and end
//   - every other job leaves the assignment Assigned without a schedule
//   - capacity (max workers) is not consulted
//   - an Assigned or Confirmed application is never duplicated
//   - a Rejected or Cancelled application is re-activated in place
//
// Example usage:
//
//	policy := services.NewAssignmentPolicy()
//	switch policy.Classify(existing) {
//	case services.Skip:
//	    result.AlreadyExists++
//	case services.Reactivate:
//	    err = existing.Apply(policy.DecideOutcome(j))
//	case services.Create:
//	    app, err = jobapplication.NewApplication(kernel.NewUUID(), j.ID(), workerID, policy.DecideOutcome(j))
//	}
type AssignmentPolicy struct{}

// NewAssignmentPolicy creates a new AssignmentPolicy instance.
func NewAssignmentPolicy() AssignmentPolicy {
	return AssignmentPolicy{}
}

// DecideOutcome returns the status and schedule an assignment to j writes.
// The schedule is copied, so later edits to the job do not leak into it.
func (AssignmentPolicy) DecideOutcome(j *job.Job) jobapplication.Outcome {
	if !j.LocksScheduleOnAssignment() {
		return jobapplication.Outcome{Status: jobapplication.Assigned}
	}

	schedule := j.FixedSchedule()
	start, end := schedule.Start, schedule.End
	return jobapplication.Outcome{
		Status:         jobapplication.Confirmed,
		ScheduledStart: &start,
		ScheduledEnd:   &end,
	}
}

// Classify decides how a repeated assignment treats the application that
// already exists for the pair, if any.
//
// Applied is promoted in place rather than duplicated, which keeps a single
// active row per pair. Completed is left alone and reported as already present.
func (AssignmentPolicy) Classify(existing *jobapplication.Application) Decision {
	if existing == nil {
		return Create
	}

	switch existing.Status() {
	case jobapplication.Assigned, jobapplication.Confirmed, jobapplication.Completed:
		return Skip
	default:
		return Reactivate
	}
}
