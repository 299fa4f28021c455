package config

import (
	"fmt"
	"time"
)

// CollectorAdapter holds the settings of the tracker API client used by the
// collector.
type CollectorAdapter struct {
	// APIAddress is the base URL of the tracker API.
	APIAddress string
	// RequestTimeout is the timeout of each outbound request.
	RequestTimeout time.Duration
}

// CollectorConfig is the collector view assembled from [StructuredConfig].
type CollectorConfig struct {
	// Adapter contains the tracker API client settings.
	Adapter CollectorAdapter
	// MQTT contains the broker settings.
	MQTT MQTT
	// Log contains the logger settings.
	Log Log
}

// GetCollectorConfig builds and validates the collector configuration from
// the merged structured configuration. Database and server settings are not
// required by the collector and are not validated.
func GetCollectorConfig() (*CollectorConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	collectorCfg := cfg.collectorView()

	return collectorCfg, collectorCfg.validate()
}

func (cfg *StructuredConfig) collectorView() *CollectorConfig {
	return &CollectorConfig{
		Adapter: CollectorAdapter{
			APIAddress:     cfg.Collector.APIAddress,
			RequestTimeout: cfg.Collector.RequestTimeout,
		},
		MQTT: cfg.Collector.MQTT,
		Log:  cfg.Log,
	}
}
