package seeds

import (
	"errors"

	"gorm.io/gorm"

	"deskhub/internal/infrastructure/persistence/models"
)

// SeedAdminAgent creates the initial system admin account when no agent with
// the username exists. The caller supplies the already-hashed password.
func SeedAdminAgent(db *gorm.DB, username, passwordHash string) error {
	if username == "" || passwordHash == "" {
		return errors.New("admin username and password hash are required")
	}

	admin := models.AgentModel{
		Username:     username,
		FullName:     "System Administrator",
		PasswordHash: passwordHash,
		Role:         "system_admin",
		Active:       true,
	}

	return db.FirstOrCreate(&admin, models.AgentModel{Username: username}).Error
}
