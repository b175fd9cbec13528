// Package workerrepo reads worker accounts. Workers are managed by another
// part of the system; this package never writes them.
package workerrepo

import (
	"context"
	"errors"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkerDTO is the subset of the workers table assignment reads.
type WorkerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"not null"`
	PushAddress *string
}

func (WorkerDTO) TableName() string {
	return "workers"
}

func toDomain(dto WorkerDTO) (ports.Worker, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Worker{}, err
	}
	return ports.Worker{ID: id, Name: dto.Name, PushAddress: dto.PushAddress}, nil
}

// GormWorkerRepository implements ports.WorkerRepository using GORM.
type GormWorkerRepository struct {
	db *gorm.DB
}

func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

func (r *GormWorkerRepository) Get(ctx context.Context, id kernel.UUID) (ports.Worker, error) {
	if err := id.Validate(); err != nil {
		return ports.Worker{}, err
	}

	var dto WorkerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Worker{}, errs.NewObjectNotFoundError("workerId", id.String())
		}
		return ports.Worker{}, err
	}
	return toDomain(dto)
}

func (r *GormWorkerRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]ports.Worker, error) {
	if len(ids) == 0 {
		return []ports.Worker{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []WorkerDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	workers := make([]ports.Worker, 0, len(dtos))
	for _, dto := range dtos {
		w, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, nil
}
