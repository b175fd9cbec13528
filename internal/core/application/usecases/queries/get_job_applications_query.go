// Package queries contains read operations. Queries bypass the domain
// model and read straight from the store.
package queries

import (
	"errors"
	"time"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/guard"
)

var (
	ErrGetJobApplicationsQueryIsNotConstructed = errors.New(
		"GetJobApplicationsQuery must be created via NewGetJobApplicationsQuery constructor",
	)
)

// GetJobApplicationsQuery lists the applications of one job, optionally
// narrowed to some statuses.
//
// Example:
//
//	query, err := NewGetJobApplicationsQuery(jobID, []jobapplication.Status{jobapplication.Applied})
//	if err != nil {
//	    return err
//	}
//	applicants, err := handler.Handle(ctx, query)
type GetJobApplicationsQuery struct {
	jobID    kernel.UUID
	statuses []jobapplication.Status

	guard guard.ConstructorGuard
}

// NewGetJobApplicationsQuery accepts an empty status list, meaning all statuses.
func NewGetJobApplicationsQuery(jobID kernel.UUID, statuses []jobapplication.Status) (GetJobApplicationsQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetJobApplicationsQuery{}, err
	}
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetJobApplicationsQuery{}, err
		}
	}

	return GetJobApplicationsQuery{
		jobID:    jobID,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetJobApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetJobApplicationsQueryIsNotConstructed)
}

// JobID returns the job whose applications are listed.
func (q GetJobApplicationsQuery) JobID() kernel.UUID {
	return q.jobID
}

// Statuses returns the status filter; empty means every status.
func (q GetJobApplicationsQuery) Statuses() []jobapplication.Status {
	return q.statuses
}

// GetJobApplicationsQueryResponse is one applicant of the job.
type GetJobApplicationsQueryResponse struct {
	ApplicationID  kernel.UUID
	WorkerID       kernel.UUID
	WorkerName     string
	Status         jobapplication.Status
	ScheduledStart *time.Time
	ScheduledEnd   *time.Time
	HasContract    bool
}
