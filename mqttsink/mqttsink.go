// Package mqttsink publishes animator events as JSON over MQTT.
package mqttsink

import (
	"encoding/json"
	"log/slog"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/phanxgames/animator"
	"github.com/phanxgames/animator/internal/logging"
)

// Publisher is the part of mqtt.Client the sink uses.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Sink is an animator.EventSink publishing each event to a topic.
type Sink struct {
	client  Publisher
	topic   string
	qos     byte
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Sink.
type Option func(*Sink)

// WithQoS sets the MQTT quality of service. The default is 0.
func WithQoS(qos byte) Option {
	return func(s *Sink) { s.qos = qos }
}

// WithLogger sets the logger publish failures are reported to.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout bounds how long a publish is waited on before it is reported
// as failed. The default is 5s.
func WithTimeout(d time.Duration) Option {
	return func(s *Sink) { s.timeout = d }
}

// New creates a sink publishing to topic through client.
func New(client Publisher, topic string, opts ...Option) *Sink {
	s := &Sink{
		client:  client,
		topic:   topic,
		timeout: 5 * time.Second,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Emit publishes event without blocking the caller. Failures are logged.
func (s *Sink) Emit(event animator.AnimationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("encode animation event", "error", err)
		return
	}
	token := s.client.Publish(s.topic, s.qos, false, payload)
	go s.await(token, event)
}

func (s *Sink) await(token mqtt.Token, event animator.AnimationEvent) {
	if !token.WaitTimeout(s.timeout) {
		s.logger.Warn("publish animation event timed out", "topic", s.topic, "type", event.Type.String())
		return
	}
	if err := token.Error(); err != nil {
		s.logger.Warn("publish animation event", "topic", s.topic, "type", event.Type.String(), "error", err)
	}
}
