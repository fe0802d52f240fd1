// Package migration reconciles the database schema, either through GORM
// AutoMigrate in development or versioned SQL scripts elsewhere.
package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"deskhub/internal/infrastructure/persistence/models"
	"deskhub/internal/shared/logger"
)

type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the migration strategy for the environment: AutoMigrate in
// development, SQL scripts everywhere else.
func NewManager(environment string) *Manager {
	var strategy Strategy

	switch strings.ToLower(environment) {
	case "development", "dev", "":
		strategy = NewGormAutoMigrateStrategy()
	default:
		scriptsPath, _ := filepath.Abs("./internal/infrastructure/migration/scripts")
		strategy = NewGolangMigrateStrategy(scriptsPath)
	}

	return NewManagerWithStrategy(strategy)
}

func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	return nil
}

func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}

// AllModels lists every persisted model, in a dependency-friendly creation
// order.
func AllModels() []interface{} {
	return []interface{}{
		&models.ProjectModel{},
		&models.CategoryModel{},
		&models.StatusModel{},
		&models.PriorityModel{},
		&models.FieldTemplateModel{},
		&models.FormFieldModel{},
		&models.AgentModel{},
		&models.AgentProjectModel{},
		&models.TicketModel{},
		&models.CommentModel{},
		&models.AttachmentModel{},
		&models.FeedbackModel{},
		&models.NotificationTemplateModel{},
		&models.EmailSettingsModel{},
	}
}
