package applicationrepo

import (
	"context"
	"errors"

	"staffing/internal/core/domain/model/jobapplication"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolation = "23505"

var mutableColumns = []string{"status", "scheduled_start", "scheduled_end", "updated_at"}

// GormApplicationRepository implements ports.ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db *gorm.DB
}

func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*jobapplication.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("applicationId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetMany loads every existing application among ids with one IN query.
func (r *GormApplicationRepository) GetMany(
	ctx context.Context,
	ids []kernel.UUID,
) ([]*jobapplication.Application, error) {
	if len(ids) == 0 {
		return []*jobapplication.Application{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ApplicationDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}
	return toDomainSlice(dtos)
}

// FindByJobAndWorker returns nil without error when the pair has no row.
func (r *GormApplicationRepository) FindByJobAndWorker(
	ctx context.Context,
	jobID, workerID kernel.UUID,
) (*jobapplication.Application, error) {
	var dto ApplicationDTO
	err := r.db.WithContext(ctx).
		Where("job_id = ? AND worker_id = ?", jobID.Bytes(), workerID.Bytes()).
		Take(&dto).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return toDomain(dto)
}

// Save is INSERT ... ON CONFLICT (job_id, worker_id) DO UPDATE. Two writers
// racing on the same pair end with one row holding the later write.
func (r *GormApplicationRepository) Save(ctx context.Context, app *jobapplication.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}

	dto := fromDomain(app)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "worker_id"}},
			DoUpdates: clause.AssignmentColumns(mutableColumns),
		}).
		Create(&dto).Error
	if err != nil {
		return translate(err, app)
	}
	return nil
}

// Update writes status and schedule. Nil schedule fields are written as NULL.
func (r *GormApplicationRepository) Update(ctx context.Context, app *jobapplication.Application) error {
	if err := app.Validate(); err != nil {
		return err
	}

	dto := fromDomain(app)
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", dto.ID).
		Select(mutableColumns).
		Updates(&dto)
	if result.Error != nil {
		return translate(result.Error, app)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("applicationId", app.ID().String())
	}
	return nil
}

// translate reports a unique violation that ON CONFLICT could not absorb,
// such as a primary key reused for another pair.
func translate(err error, app *jobapplication.Application) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errs.NewValueIsInvalidErrorWithCause("application "+app.ID().String()+" conflicts with an existing row", err)
	}
	return err
}

func toDomainSlice(dtos []ApplicationDTO) ([]*jobapplication.Application, error) {
	apps := make([]*jobapplication.Application, 0, len(dtos))
	for _, dto := range dtos {
		app, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, nil
}
