// Package outboxrepo stores pushes whose delivery failed so the redelivery
// job can retry them later.
package outboxrepo

import (
	"context"
	"time"

	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/core/ports"
	"staffing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationDTO is a row of the notification_outbox table.
type NotificationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkerID    uuid.UUID `gorm:"type:uuid;not null"`
	Address     string    `gorm:"not null"`
	Text        string    `gorm:"type:text;not null"`
	Attempts    int       `gorm:"not null;default:0"`
	LastError   string    `gorm:"type:text"`
	DeliveredAt *time.Time
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
}

func (NotificationDTO) TableName() string {
	return "notification_outbox"
}

// GormOutboxRepository implements ports.NotificationOutbox.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Record parks a failed push. Attempts counts the failed synchronous try.
func (r *GormOutboxRepository) Record(ctx context.Context, n ports.PendingNotification) error {
	id := n.ID
	if id.Validate() != nil {
		id = kernel.NewUUID()
	}
	attempts := n.Attempts
	if attempts < 1 {
		attempts = 1
	}

	dto := NotificationDTO{
		ID:        id.Bytes(),
		WorkerID:  n.WorkerID.Bytes(),
		Address:   n.Address,
		Text:      n.Text,
		Attempts:  attempts,
		LastError: n.LastError,
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Pending returns undelivered entries below the attempt limit, oldest first.
func (r *GormOutboxRepository) Pending(ctx context.Context, maxAttempts, limit int) ([]ports.PendingNotification, error) {
	var dtos []NotificationDTO
	err := r.db.WithContext(ctx).
		Where("delivered_at IS NULL AND attempts < ?", maxAttempts).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	pending := make([]ports.PendingNotification, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		workerID, idErr := kernel.UUIDFromBytes(dto.WorkerID[:])
		if idErr != nil {
			return nil, idErr
		}
		pending = append(pending, ports.PendingNotification{
			ID:        id,
			WorkerID:  workerID,
			Address:   dto.Address,
			Text:      dto.Text,
			Attempts:  dto.Attempts,
			LastError: dto.LastError,
			CreatedAt: dto.CreatedAt,
		})
	}
	return pending, nil
}

func (r *GormOutboxRepository) MarkDelivered(ctx context.Context, id kernel.UUID) error {
	return r.update(ctx, id, map[string]any{"delivered_at": time.Now()})
}

func (r *GormOutboxRepository) MarkFailed(ctx context.Context, id kernel.UUID, cause error) error {
	lastError := ""
	if cause != nil {
		lastError = cause.Error()
	}
	return r.update(ctx, id, map[string]any{
		"attempts":   gorm.Expr("attempts + 1"),
		"last_error": lastError,
	})
}

func (r *GormOutboxRepository) update(ctx context.Context, id kernel.UUID, values map[string]any) error {
	result := r.db.WithContext(ctx).Model(&NotificationDTO{}).Where("id = ?", id.Bytes()).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("notificationId", id.String())
	}
	return nil
}
