// Package settingsrepo reads tenant-wide switches from the tenant_settings
// key/value table.
package settingsrepo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// SelectionNotificationKey holds the switch for "you were selected" pushes.
const SelectionNotificationKey = "selection_notification_enabled"

// SettingDTO is a row of the tenant_settings table.
type SettingDTO struct {
	Key   string `gorm:"primaryKey;type:varchar(64)"`
	Value string `gorm:"type:text;not null"`
}

func (SettingDTO) TableName() string {
	return "tenant_settings"
}

// GormSettingsRepository implements ports.NotificationSettings.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// SelectionNotificationsEnabled is true unless the key is present with
// "false", "0" or "off".
func (r *GormSettingsRepository) SelectionNotificationsEnabled(ctx context.Context) (bool, error) {
	var dto SettingDTO
	err := r.db.WithContext(ctx).Take(&dto, "key = ?", SelectionNotificationKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(dto.Value)) {
	case "false", "0", "off":
		return false, nil
	default:
		return true, nil
	}
}
