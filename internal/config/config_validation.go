// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/rs/zerolog"
)

// validate checks that the merged server configuration can be used at
// startup. Defaults are expected to be applied already.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "pgx", "sqlite3":
	default:
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.MaxBodyBytes <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.ResetTokenTTL <= 0 {
		return ErrInvalidAppConfigs
	}

	return cfg.Log.validate()
}

func (l Log) validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return ErrInvalidLogConfigs
	}

	return nil
}

func (cfg *CollectorConfig) validate() error {
	if cfg.Adapter.APIAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.MQTT.Broker == "" || cfg.MQTT.Topic == "" || cfg.MQTT.QoS < 0 || cfg.MQTT.QoS > 2 {
		return ErrInvalidMQTTConfigs
	}

	return cfg.Log.validate()
}
