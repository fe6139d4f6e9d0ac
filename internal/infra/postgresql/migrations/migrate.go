package migrations

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/pawhaven/adoption-core/internal/repository"
)

func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, []*gormigrate.Migration{
		{
			ID: "000001_create_users",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.UserModel{}); err != nil {
					return err
				}
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_users_role ON users (role)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.UserModel{})
			},
		},
		{
			ID: "000002_create_animals",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.AnimalModel{}); err != nil {
					return err
				}
				indexes := []string{
					`CREATE INDEX IF NOT EXISTS idx_animals_adopted_created ON animals (adopted, created_at)`,
					`CREATE INDEX IF NOT EXISTS idx_animals_submitted_by ON animals (submitted_by) WHERE submitted_by IS NOT NULL`,
				}
				for _, sql := range indexes {
					if err := tx.Exec(sql).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.AnimalModel{})
			},
		},
		{
			ID: "000003_create_adoption_applications",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.ApplicationModel{}); err != nil {
					return err
				}
				return tx.Exec(`CREATE INDEX IF NOT EXISTS idx_applications_animal_status ON adoption_applications (animal_id, status)`).Error
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.ApplicationModel{})
			},
		},
		{
			ID: "000004_create_notifications",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&repository.NotificationModel{}); err != nil {
					return err
				}
				indexes := []string{
					`CREATE INDEX IF NOT EXISTS idx_notifications_recipient_live ON notifications (recipient, created_at DESC) WHERE deleted = false`,
					`CREATE INDEX IF NOT EXISTS idx_notifications_unread ON notifications (recipient) WHERE "read" = false AND deleted = false`,
					// Backs the review-gate lookup on the grant key.
					`CREATE INDEX IF NOT EXISTS idx_notifications_application_grant ON notifications ((data ->> 'applicationId')) WHERE deleted = false`,
				}
				for _, sql := range indexes {
					if err := tx.Exec(sql).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable(&repository.NotificationModel{})
			},
		},
	})

	return m.Migrate()
}
