package seeds

import "gorm.io/gorm"

// Run applies every baseline seed except the admin account, which needs a
// hashed password from the caller.
func Run(db *gorm.DB) error {
	seeders := []func(*gorm.DB) error{
		SeedStatuses,
		SeedPriorities,
		SeedFieldTemplates,
		SeedNotificationTemplates,
	}

	for _, seed := range seeders {
		if err := seed(db); err != nil {
			return err
		}
	}

	return nil
}
