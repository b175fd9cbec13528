// Package referencerepo resolves the name-keyed reference tables used by
// job ingestion: clients and report templates.
package referencerepo

import (
	"context"

	"staffing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientDTO is a row of the clients table.
type ClientDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

func (ClientDTO) TableName() string {
	return "clients"
}

// TemplateDTO is a row of the report_templates table.
type TemplateDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null;uniqueIndex"`
}

func (TemplateDTO) TableName() string {
	return "report_templates"
}

type nameRow struct {
	ID   uuid.UUID
	Name string
}

// GormNameResolver looks names up in one reference table.
type GormNameResolver struct {
	db    *gorm.DB
	table string
}

// NewGormClientRepository resolves client names.
func NewGormClientRepository(db *gorm.DB) *GormNameResolver {
	return &GormNameResolver{db: db, table: ClientDTO{}.TableName()}
}

// NewGormTemplateRepository resolves report template names.
func NewGormTemplateRepository(db *gorm.DB) *GormNameResolver {
	return &GormNameResolver{db: db, table: TemplateDTO{}.TableName()}
}

// FindIDsByNames issues a single IN query. Names without a row are absent
// from the result.
func (r *GormNameResolver) FindIDsByNames(ctx context.Context, names []string) (map[string]kernel.UUID, error) {
	found := make(map[string]kernel.UUID, len(names))
	if len(names) == 0 {
		return found, nil
	}

	var rows []nameRow
	if err := r.db.WithContext(ctx).Table(r.table).Select("id", "name").Where("name IN ?", names).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		found[row.Name] = id
	}
	return found, nil
}
