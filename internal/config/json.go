package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		ResetTokenTTL    Duration `json:"reset_token_ttl"`
		ExposeResetToken bool     `json:"expose_reset_token"`
		Version          string   `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver       string `json:"driver"`
			DSN          string `json:"dsn"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MaxBodyBytes    int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	Log struct {
		Level     string `json:"level"`
		ErrorFile string `json:"error_file"`
	} `json:"log,omitempty"`

	Collector struct {
		APIAddress     string   `json:"api_address"`
		RequestTimeout Duration `json:"request_timeout"`
		MQTT           struct {
			Broker   string `json:"broker"`
			ClientID string `json:"client_id"`
			Topic    string `json:"topic"`
			Username string `json:"username"`
			Password string `json:"password"`
			QoS      int    `json:"qos"`
		} `json:"mqtt,omitempty"`
	} `json:"collector,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ResetTokenTTL:    time.Duration(jsonCfg.App.ResetTokenTTL),
			ExposeResetToken: jsonCfg.App.ExposeResetToken,
			Version:          jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver:       jsonCfg.Storage.DB.Driver,
				DSN:          jsonCfg.Storage.DB.DSN,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			MaxBodyBytes:    jsonCfg.Server.MaxBodyBytes,
		},
		Log: Log{
			Level:     jsonCfg.Log.Level,
			ErrorFile: jsonCfg.Log.ErrorFile,
		},
		Collector: Collector{
			APIAddress:     jsonCfg.Collector.APIAddress,
			RequestTimeout: time.Duration(jsonCfg.Collector.RequestTimeout),
			MQTT: MQTT{
				Broker:   jsonCfg.Collector.MQTT.Broker,
				ClientID: jsonCfg.Collector.MQTT.ClientID,
				Topic:    jsonCfg.Collector.MQTT.Topic,
				Username: jsonCfg.Collector.MQTT.Username,
				Password: jsonCfg.Collector.MQTT.Password,
				QoS:      jsonCfg.Collector.MQTT.QoS,
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
