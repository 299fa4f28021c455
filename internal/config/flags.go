package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-driver database driver (pgx or sqlite3)
//	-d database DSN
//	-c/-config json file path with configs
//	-reset-token-ttl reset token lifetime (e.g., "1h")
//	-expose-reset-token echo reset tokens in responses
//	-request-timeout server request timeout (e.g., "30s")
//	-shutdown-timeout graceful shutdown timeout
//	-log-level minimal log level
//	-error-log file receiving error-level entries
//	-api-address tracker API base URL used by the collector
//	-mqtt-broker MQTT broker URL
//	-mqtt-topic MQTT topic with raw telemetry frames
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var driver, databaseDSN string
	var jsonConfigPath string
	var resetTokenTTL time.Duration
	var exposeResetToken bool
	var requestTimeout, shutdownTimeout time.Duration
	var logLevel, errorLog string
	var apiAddress, mqttBroker, mqttTopic string

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&resetTokenTTL, "reset-token-ttl", 0, "Reset token lifetime (e.g., 1h)")
	fs.BoolVar(&exposeResetToken, "expose-reset-token", false, "Echo reset tokens in responses")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&errorLog, "error-log", "", "Error log file")
	fs.StringVar(&apiAddress, "api-address", "", "Tracker API address")
	fs.StringVar(&mqttBroker, "mqtt-broker", "", "MQTT broker URL")
	fs.StringVar(&mqttTopic, "mqtt-topic", "", "MQTT telemetry topic")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			ResetTokenTTL:    resetTokenTTL,
			ExposeResetToken: exposeResetToken,
		},
		Storage: Storage{
			DB: DB{
				Driver: driver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Log: Log{
			Level:     logLevel,
			ErrorFile: errorLog,
		},
		Collector: Collector{
			APIAddress: apiAddress,
			MQTT: MQTT{
				Broker: mqttBroker,
				Topic:  mqttTopic,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host listens on all interfaces; any other host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
