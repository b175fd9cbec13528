package jobrepo

import (
	"context"
	"errors"

	"staffing/internal/core/domain/model/job"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository using GORM.
type GormJobRepository struct {
	db *gorm.DB
}

func NewGormJobRepository(db *gorm.DB) *GormJobRepository {
	return &GormJobRepository{db: db}
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("jobId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads every existing job among ids with one IN query.
func (r *GormJobRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*job.Job, error) {
	if len(ids) == 0 {
		return []*job.Job{}, nil
	}

	var dtos []JobDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs(ids)).Find(&dtos).Error; err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// AddAll inserts the batch with a single multi-row INSERT.
func (r *GormJobRepository) AddAll(ctx context.Context, jobs []*job.Job) error {
	dtos, err := toDTOs(jobs)
	if err != nil || len(dtos) == 0 {
		return err
	}
	return r.db.WithContext(ctx).Create(&dtos).Error
}

// UpsertAll inserts the batch or overwrites rows sharing an id, in one statement.
func (r *GormJobRepository) UpsertAll(ctx context.Context, jobs []*job.Job) error {
	dtos, err := toDTOs(jobs)
	if err != nil || len(dtos) == 0 {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dtos).Error
}

func toDTOs(jobs []*job.Job) ([]JobDTO, error) {
	dtos := make([]JobDTO, 0, len(jobs))
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			return nil, err
		}
		dtos = append(dtos, fromDomain(j))
	}
	return dtos, nil
}

func rawIDs(ids []kernel.UUID) []uuid.UUID {
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}
