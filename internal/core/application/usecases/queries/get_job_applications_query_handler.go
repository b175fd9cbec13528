package queries

import (
	"context"
	"database/sql"
	"time"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetJobApplicationsQueryHandler reads applicants with their worker names
// in one join, oldest application first.
type GetJobApplicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetJobApplicationsQueryHandler returns a handler reading applicants straight from db.
func NewGetJobApplicationsQueryHandler(db *gorm.DB) GetJobApplicationsQueryHandler {
	return GetJobApplicationsQueryHandler{db: db}
}

// Handle lists the applicants of the job, oldest first.
func (h GetJobApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetJobApplicationsQuery,
) ([]GetJobApplicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(query.statuses))
	for _, s := range query.statuses {
		names = append(names, s.String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			a.worker_id,
			COALESCE(w.name, ''),
			a.status,
			a.scheduled_start,
			a.scheduled_end,
			a.contract_id IS NOT NULL
		FROM job_applications a
		LEFT JOIN workers w ON w.id = a.worker_id
		WHERE a.job_id = ?
		  AND (cardinality(?::text[]) = 0 OR a.status = ANY(?::text[]))
		ORDER BY a.created_at, a.id
	`, query.jobID.Bytes(), pq.Array(names), pq.Array(names)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applicants := make([]GetJobApplicationsQueryResponse, 0)
	for rows.Next() {
		var (
			r              GetJobApplicationsQueryResponse
			id, workerID   uuid.UUID
			status         string
			scheduledStart sql.NullTime
			scheduledEnd   sql.NullTime
		)
		if err = rows.Scan(&id, &workerID, &r.WorkerName, &status, &scheduledStart, &scheduledEnd, &r.HasContract); err != nil {
			return nil, err
		}

		if r.ApplicationID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if r.WorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}
		if r.Status, err = jobapplication.ParseStatus(status); err != nil {
			return nil, err
		}
		r.ScheduledStart = nullableTime(scheduledStart)
		r.ScheduledEnd = nullableTime(scheduledEnd)
		applicants = append(applicants, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return applicants, nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
