// Package jobrepo persists job aggregates.
package jobrepo

import (
	"time"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the row layout of the jobs table. Both schedule pairs are
// stored; is_flexible says which one is authoritative.
type JobDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title           string     `gorm:"not null"`
	AddressText     string     `gorm:"not null"`
	Description     string     `gorm:"type:text"`
	ClientID        *uuid.UUID `gorm:"type:uuid;index"`
	TemplateID      *uuid.UUID `gorm:"type:uuid"`
	IsFlexible      bool       `gorm:"not null;default:false"`
	AutoSetSchedule bool       `gorm:"not null;default:false"`
	StartTime       time.Time  `gorm:"type:timestamptz"`
	EndTime         time.Time  `gorm:"type:timestamptz"`
	WorkPeriodStart time.Time  `gorm:"type:timestamptz"`
	WorkPeriodEnd   time.Time  `gorm:"type:timestamptz"`
	MaxWorkers      int        `gorm:"not null;default:1"`
	Status          string     `gorm:"type:varchar(16);not null;index"`
	RewardAmount    float64    `gorm:"type:numeric(12,2);not null;default:0"`
	RewardTaxMode   string     `gorm:"type:varchar(4);not null;default:EXCL"`
	BillingAmount   *float64   `gorm:"type:numeric(12,2)"`
	BillingTaxMode  string     `gorm:"type:varchar(4);not null;default:EXCL"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	return JobDTO{
		ID:              j.ID().Bytes(),
		Title:           j.Title(),
		AddressText:     j.Address(),
		Description:     j.Description(),
		ClientID:        kernel.NullableFromUUIDPtr(j.ClientID()),
		TemplateID:      kernel.NullableFromUUIDPtr(j.TemplateID()),
		IsFlexible:      j.IsFlexible(),
		AutoSetSchedule: j.AutoSetSchedule(),
		StartTime:       j.StartTime(),
		EndTime:         j.EndTime(),
		WorkPeriodStart: j.WorkPeriodStart(),
		WorkPeriodEnd:   j.WorkPeriodEnd(),
		MaxWorkers:      j.MaxWorkers(),
		Status:          j.Status().String(),
		RewardAmount:    j.RewardAmount(),
		RewardTaxMode:   j.RewardTaxMode().String(),
		BillingAmount:   j.BillingAmount(),
		BillingTaxMode:  j.BillingTaxMode().String(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDPtrFromNullable(dto.ClientID)
	if err != nil {
		return nil, err
	}
	templateID, err := kernel.UUIDPtrFromNullable(dto.TemplateID)
	if err != nil {
		return nil, err
	}
	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(job.Params{
		ID:              id,
		Title:           dto.Title,
		Address:         dto.AddressText,
		Description:     dto.Description,
		ClientID:        clientID,
		TemplateID:      templateID,
		IsFlexible:      dto.IsFlexible,
		AutoSetSchedule: dto.AutoSetSchedule,
		StartTime:       dto.StartTime,
		EndTime:         dto.EndTime,
		WorkPeriodStart: dto.WorkPeriodStart,
		WorkPeriodEnd:   dto.WorkPeriodEnd,
		MaxWorkers:      dto.MaxWorkers,
		Status:          status,
		RewardAmount:    dto.RewardAmount,
		RewardTaxMode:   kernel.TaxMode(dto.RewardTaxMode),
		BillingAmount:   dto.BillingAmount,
		BillingTaxMode:  kernel.TaxMode(dto.BillingTaxMode),
	})
}
