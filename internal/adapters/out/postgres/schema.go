package postgres

import (
	"staffing/internal/adapters/out/postgres/applicationrepo"
	"staffing/internal/adapters/out/postgres/jobrepo"
	"staffing/internal/adapters/out/postgres/outboxrepo"
	"staffing/internal/adapters/out/postgres/referencerepo"
	"staffing/internal/adapters/out/postgres/settingsrepo"
	"staffing/internal/adapters/out/postgres/workerrepo"

	"gorm.io/gorm"
)

// Models lists every table of the staffing store.
func Models() []any {
	return []any{
		&referencerepo.ClientDTO{},
		&referencerepo.TemplateDTO{},
		&workerrepo.WorkerDTO{},
		&jobrepo.JobDTO{},
		&applicationrepo.ApplicationDTO{},
		&settingsrepo.SettingDTO{},
		&outboxrepo.NotificationDTO{},
	}
}

// Migrate creates or alters the tables, including the (job_id, worker_id)
// unique index assignment relies on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
