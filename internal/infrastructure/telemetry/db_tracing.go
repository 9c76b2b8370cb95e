package telemetry

import (
	"fmt"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RegisterDBTracing registers the otelgorm plugin so every GORM query
// becomes a span under the active trace. Query variables are always
// omitted: order metadata carries tax identifiers.
func RegisterDBTracing(db *gorm.DB, enabled bool, logger *zap.Logger) error {
	if !enabled {
		logger.Debug("Database tracing disabled, skipping otelgorm registration")
		return nil
	}

	plugin := otelgorm.NewPlugin(
		otelgorm.WithDBName("postgres"),
		otelgorm.WithoutQueryVariables(),
	)

	if err := db.Use(plugin); err != nil {
		return fmt.Errorf("failed to register otelgorm plugin: %w", err)
	}

	logger.Info("Database tracing enabled")
	return nil
}
