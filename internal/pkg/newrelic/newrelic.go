package newrelic

import (
	"fmt"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/skumar/cabtrack/internal/pkg/models"
)

// InitApplication creates a New Relic application from config. Returns nil
// without error when the integration is disabled.
func InitApplication(cfg models.NewRelicConfig) (*newrelic.Application, error) {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		return nil, nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize new relic: %w", err)
	}
	return app, nil
}
