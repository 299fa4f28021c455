// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
)

const (
	connectTimeout     = 10 * time.Second
	subscribeTimeout   = 5 * time.Second
	keepAlive          = 60 * time.Second
	maxReconnectDelay  = 30 * time.Second
	disconnectQuiesce  = 250 // milliseconds
	maxQoS             = 2
	handleTimeoutRatio = 2
	// maxInFlight caps the messages handled concurrently.
	maxInFlight = 4
)

var (
	ErrConnectionFailed = errors.New("mqtt connection failed")
	ErrSubscribeFailed  = errors.New("mqtt subscribe failed")
)

// Subscriber consumes firmware lines from one MQTT topic. It implements
// workers.Worker.
type Subscriber struct {
	cfg     config.MQTT
	handler MessageHandler

	// handleTimeout bounds the processing of one message.
	handleTimeout time.Duration
	// inFlight bounds concurrent handlers; paho delivers each message on its
	// own goroutine since order does not matter.
	inFlight *semaphore.Weighted

	newClient func(*pahomqtt.ClientOptions) pahomqtt.Client
	logger    *logger.Logger
}

// NewSubscriber builds a subscriber for cfg. requestTimeout is the adapter
// timeout; a message may take a couple of requests to process.
func NewSubscriber(cfg config.MQTT, handler MessageHandler, requestTimeout time.Duration, logger *logger.Logger) *Subscriber {
	if requestTimeout <= 0 {
		requestTimeout = config.DefaultClientTimeout
	}

	return &Subscriber{
		cfg:           cfg,
		handler:       handler,
		handleTimeout: handleTimeoutRatio * requestTimeout,
		inFlight:      semaphore.NewWeighted(maxInFlight),
		newClient:     pahomqtt.NewClient,
		logger:        logger,
	}
}

// Run connects, subscribes and delivers messages until ctx is cancelled.
func (s *Subscriber) Run(ctx context.Context) error {
	log := s.logger.GetChildLogger()
	log.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("broker", s.cfg.Broker).Str("topic", s.cfg.Topic)
	})

	client := s.newClient(s.clientOptions(ctx))

	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return fmt.Errorf("%w: timeout after %v", ErrConnectionFailed, connectTimeout)
	}
	if err := token.Error(); err != nil {
		return fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	defer client.Disconnect(disconnectQuiesce)

	log.Info().Msg("collector connected to broker")

	<-ctx.Done()

	unsubscribe := client.Unsubscribe(s.cfg.Topic)
	unsubscribe.WaitTimeout(subscribeTimeout)

	log.Info().Msg("collector stopped")
	return nil
}

// clientOptions configures auto-reconnect and resubscribes the topic on
// every (re)connect, since sessions are clean. Messages are delivered
// unordered so a slow API call never stalls the paho router; each frame
// carries its own readings and the server stamps the date.
func (s *Subscriber) clientOptions(ctx context.Context) *pahomqtt.ClientOptions {
	opts := pahomqtt.NewClientOptions().
		AddBroker(s.cfg.Broker).
		SetClientID(s.cfg.ClientID).
		SetCleanSession(true).
		SetAutoReconnect(true).
		SetMaxReconnectInterval(maxReconnectDelay).
		SetConnectTimeout(connectTimeout).
		SetKeepAlive(keepAlive).
		SetOrderMatters(false)

	if s.cfg.Username != "" {
		opts.SetUsername(s.cfg.Username)
		opts.SetPassword(s.cfg.Password)
	}

	opts.SetOnConnectHandler(func(client pahomqtt.Client) {
		token := client.Subscribe(s.cfg.Topic, s.qos(), s.onMessage(ctx))
		if !token.WaitTimeout(subscribeTimeout) {
			s.logger.Error().Str("func", "*Subscriber.onConnect").Str("topic", s.cfg.Topic).Msg("subscribe timed out")
			return
		}
		if err := token.Error(); err != nil {
			s.logger.Err(fmt.Errorf("%w: %w", ErrSubscribeFailed, err)).Str("func", "*Subscriber.onConnect").Msg("error subscribing")
			return
		}
		s.logger.Info().Str("topic", s.cfg.Topic).Msg("subscribed to telemetry topic")
	})

	opts.SetConnectionLostHandler(func(_ pahomqtt.Client, err error) {
		s.logger.Warn().Err(err).Msg("broker connection lost, reconnecting")
	})

	return opts
}

func (s *Subscriber) qos() byte {
	if s.cfg.QoS < 0 || s.cfg.QoS > maxQoS {
		return 0
	}
	return byte(s.cfg.QoS)
}

// onMessage adapts the handler to paho. At most maxInFlight messages are
// handled at once; the rest wait for a slot until ctx ends. A panic in the
// handler is recovered so that delivery continues.
func (s *Subscriber) onMessage(ctx context.Context) pahomqtt.MessageHandler {
	return func(_ pahomqtt.Client, msg pahomqtt.Message) {
		defer func() {
			if r := recover(); r != nil {
				s.logger.Error().Str("topic", msg.Topic()).Interface("panic", r).Msg("message handler panic recovered")
			}
		}()

		if err := s.inFlight.Acquire(ctx, 1); err != nil {
			s.logger.Warn().Err(err).Str("topic", msg.Topic()).Uint16("message_id", msg.MessageID()).Msg("collector stopping, message dropped")
			return
		}
		defer s.inFlight.Release(1)

		handleCtx, cancel := context.WithTimeout(ctx, s.handleTimeout)
		defer cancel()

		if err := s.handler.Handle(handleCtx, msg.Payload()); err != nil {
			s.logger.Warn().Err(err).Str("topic", msg.Topic()).Uint16("message_id", msg.MessageID()).Msg("message not fully processed")
		}
	}
}
