package postgres

import (
	"log/slog"

	"gorm.io/gorm"

	"craftapp/internal/errors"
	"craftapp/internal/infra/persistence/model"
)

// Migrate applies the schema for every persisted model and logs each step.
// It is run by the standalone migrate command before the service starts;
// the service binary itself performs no schema work.
func Migrate(db *gorm.DB, logger *slog.Logger) error {
	models := []any{
		&model.UserModel{},
	}

	for _, m := range models {
		logger.Info("Applying migration", slog.String("model", modelName(m)))
		if err := db.AutoMigrate(m); err != nil {
			return errors.Wrapf(err, "failed to migrate %s", modelName(m))
		}
	}

	logger.Info("Schema migration complete", slog.Int("models", len(models)))

	return nil
}

func modelName(m any) string {
	if t, ok := m.(interface{ TableName() string }); ok {
		return t.TableName()
	}

	return "unknown"
}
