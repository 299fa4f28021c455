package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	pahomqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solarpanel/tracker-api/internal/config"
	"github.com/solarpanel/tracker-api/internal/logger"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakeToken struct{ err error }

func (t fakeToken) Wait() bool                     { return true }
func (t fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t fakeToken) Error() error                   { return t.err }
func (t fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// fakeClient implements the part of pahomqtt.Client used by Subscriber.
// Calling any other method panics on the nil embedded interface.
type fakeClient struct {
	pahomqtt.Client

	opts       *pahomqtt.ClientOptions
	connectErr error

	mu           sync.Mutex
	topic        string
	qos          byte
	callback     pahomqtt.MessageHandler
	unsubscribed []string
	disconnected bool
}

func (c *fakeClient) Connect() pahomqtt.Token {
	if c.connectErr == nil && c.opts.OnConnect != nil {
		c.opts.OnConnect(c)
	}
	return fakeToken{err: c.connectErr}
}

func (c *fakeClient) Subscribe(topic string, qos byte, callback pahomqtt.MessageHandler) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topic, c.qos, c.callback = topic, qos, callback
	return fakeToken{}
}

func (c *fakeClient) Unsubscribe(topics ...string) pahomqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unsubscribed = append(c.unsubscribed, topics...)
	return fakeToken{}
}

func (c *fakeClient) Disconnect(uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disconnected = true
}

func (c *fakeClient) subscription() (string, byte, pahomqtt.MessageHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.topic, c.qos, c.callback
}

type fakeMessage struct {
	pahomqtt.Message
	topic   string
	payload []byte
}

func (m fakeMessage) Topic() string     { return m.topic }
func (m fakeMessage) Payload() []byte   { return m.payload }
func (m fakeMessage) MessageID() uint16 { return 1 }

type handlerFunc func(ctx context.Context, payload []byte) error

func (f handlerFunc) Handle(ctx context.Context, payload []byte) error { return f(ctx, payload) }

func testMQTTConfig() config.MQTT {
	return config.MQTT{
		Broker:   "tcp://broker:1883",
		ClientID: "collector-test",
		Topic:    "tracker/telemetry",
		Username: "solar",
		Password: "secret",
		QoS:      1,
	}
}

func newFakeSubscriber(handler MessageHandler, connectErr error) (*Subscriber, *fakeClient) {
	s := NewSubscriber(testMQTTConfig(), handler, time.Second, logger.Nop())
	client := &fakeClient{connectErr: connectErr}
	s.newClient = func(opts *pahomqtt.ClientOptions) pahomqtt.Client {
		client.opts = opts
		return client
	}
	return s, client
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestSubscriber_ClientOptions(t *testing.T) {
	s := NewSubscriber(testMQTTConfig(), nil, 0, logger.Nop())
	opts := s.clientOptions(context.Background())

	require.Len(t, opts.Servers, 1)
	assert.Equal(t, "broker:1883", opts.Servers[0].Host)
	assert.Equal(t, "collector-test", opts.ClientID)
	assert.Equal(t, "solar", opts.Username)
	assert.Equal(t, "secret", opts.Password)
	assert.True(t, opts.CleanSession)
	assert.True(t, opts.AutoReconnect)
	assert.False(t, opts.Order, "slow handlers must not block the paho router")
	assert.Equal(t, 2*config.DefaultClientTimeout, s.handleTimeout)
}

func TestSubscriber_QoS(t *testing.T) {
	s := NewSubscriber(config.MQTT{QoS: 2}, nil, time.Second, logger.Nop())
	assert.Equal(t, byte(2), s.qos())

	s.cfg.QoS = 5
	assert.Equal(t, byte(0), s.qos())
}

func TestSubscriber_RunDeliversMessages(t *testing.T) {
	received := make(chan []byte, 1)
	s, client := newFakeSubscriber(handlerFunc(func(ctx context.Context, payload []byte) error {
		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
		received <- payload
		return nil
	}), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	var callback pahomqtt.MessageHandler
	require.Eventually(t, func() bool {
		_, _, callback = client.subscription()
		return callback != nil
	}, time.Second, 5*time.Millisecond)

	topic, qos, _ := client.subscription()
	assert.Equal(t, "tracker/telemetry", topic)
	assert.Equal(t, byte(1), qos)

	callback(client, fakeMessage{topic: topic, payload: []byte("FA...0D")})
	assert.Equal(t, []byte("FA...0D"), <-received)

	cancel()
	require.NoError(t, <-done)

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, []string{"tracker/telemetry"}, client.unsubscribed)
	assert.True(t, client.disconnected)
}

func TestSubscriber_RunConnectError(t *testing.T) {
	s, client := newFakeSubscriber(nil, errors.New("connection refused"))

	err := s.Run(context.Background())

	assert.ErrorIs(t, err, ErrConnectionFailed)
	assert.False(t, client.disconnected)
}

func TestSubscriber_HandlerPanicIsRecovered(t *testing.T) {
	s := NewSubscriber(testMQTTConfig(), handlerFunc(func(context.Context, []byte) error {
		panic("decoder bug")
	}), time.Second, logger.Nop())

	assert.NotPanics(t, func() {
		s.onMessage(context.Background())(nil, fakeMessage{topic: "t", payload: []byte("x")})
	})
}

func TestSubscriber_BoundsConcurrentHandlers(t *testing.T) {
	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	release := make(chan struct{})
	s := NewSubscriber(testMQTTConfig(), handlerFunc(func(context.Context, []byte) error {
		mu.Lock()
		running++
		peak = max(peak, running)
		mu.Unlock()

		<-release

		mu.Lock()
		running--
		mu.Unlock()
		return nil
	}), time.Second, logger.Nop())

	callback := s.onMessage(context.Background())
	var wg sync.WaitGroup
	for range maxInFlight + 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			callback(nil, fakeMessage{topic: "t", payload: []byte("x")})
		}()
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return running == maxInFlight
	}, time.Second, 5*time.Millisecond)

	close(release)
	wg.Wait()

	assert.Equal(t, maxInFlight, peak)
}

func TestSubscriber_DropsWaitingMessageOnShutdown(t *testing.T) {
	called := false
	s := NewSubscriber(testMQTTConfig(), handlerFunc(func(context.Context, []byte) error {
		called = true
		return nil
	}), time.Second, logger.Nop())
	require.True(t, s.inFlight.TryAcquire(maxInFlight))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.onMessage(ctx)(nil, fakeMessage{topic: "t", payload: []byte("x")})

	assert.False(t, called)
}
