// Package applicationrepo persists job applications. The table carries a
// unique index on (job_id, worker_id); Save is an upsert on that key.
package applicationrepo

import (
	"time"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO is the row layout of the job_applications table.
type ApplicationDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	JobID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_job_applications_job_worker,priority:1"`
	WorkerID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_job_applications_job_worker,priority:2;index"`
	Status         string     `gorm:"type:varchar(16);not null;index"`
	ScheduledStart *time.Time `gorm:"type:timestamptz"`
	ScheduledEnd   *time.Time `gorm:"type:timestamptz"`
	ContractID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt      time.Time  `gorm:"autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (ApplicationDTO) TableName() string {
	return "job_applications"
}

func fromDomain(app *jobapplication.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:             app.ID().Bytes(),
		JobID:          app.JobID().Bytes(),
		WorkerID:       app.WorkerID().Bytes(),
		Status:         app.Status().String(),
		ScheduledStart: app.ScheduledStart(),
		ScheduledEnd:   app.ScheduledEnd(),
		ContractID:     kernel.NullableFromUUIDPtr(app.ContractID()),
	}
}

func toDomain(dto ApplicationDTO) (*jobapplication.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromBytes(dto.JobID[:])
	if err != nil {
		return nil, err
	}
	workerID, err := kernel.UUIDFromBytes(dto.WorkerID[:])
	if err != nil {
		return nil, err
	}
	contractID, err := kernel.UUIDPtrFromNullable(dto.ContractID)
	if err != nil {
		return nil, err
	}
	status, err := jobapplication.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return jobapplication.RestoreApplication(id, jobID, workerID, status, dto.ScheduledStart, dto.ScheduledEnd, contractID)
}
