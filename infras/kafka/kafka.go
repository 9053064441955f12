package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lodging/config"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writeTimeout   = 10 * time.Second
	readRetryDelay = 2 * time.Second
)

var ErrEmptyTopic = errors.New("topic name cannot be empty")

// Message is an outgoing event; Value is encoded as JSON.
type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	payload, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: payload}, nil
}

// DecodeKafkaMessage returns the key and the JSON decoded value of msg.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return string(msg.Key), value, fmt.Errorf("failed to decode message %q: %w", msg.Key, err)
	}

	return string(msg.Key), value, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	// Consume blocks until ctx is done, passing every message to handler.
	Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message))
}

type kafkaClientImpl struct {
	cfg       *config.Config
	mechanism sasl.Mechanism
	writer    *kafkaGo.Writer
}

func mechanism(cfg *config.Config) sasl.Mechanism {
	if cfg.Kafka.SASL.Username == "" {
		return nil
	}

	return plain.Mechanism{
		Username: cfg.Kafka.SASL.Username,
		Password: cfg.Kafka.SASL.Password,
	}
}

// New returns a broker backed client, or one that drops every message when kafka is disabled.
func New(cfg *config.Config) Client {
	if !cfg.Kafka.Enable || len(cfg.Kafka.Brokers) == 0 {
		log.Info().Msg("kafka disabled, domain events will not be published")

		return disabled{}
	}

	auth := mechanism(cfg)

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("sasl", auth != nil).Msg("kafka client initialized")

	return &kafkaClientImpl{
		cfg:       cfg,
		mechanism: auth,
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              &kafkaGo.Transport{SASL: auth},
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			WriteTimeout:           writeTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	batch := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to encode kafka message")

			return err
		}

		msg.Topic = topic
		batch = append(batch, msg)
	}

	if err := k.writer.WriteMessages(ctx, batch...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish kafka messages")

		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("count", len(batch)).Msg("kafka messages published")

	return nil
}

func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler func(message kafkaGo.Message)) {
	if topic == "" {
		log.Error().Err(ErrEmptyTopic).Msg("kafka consumer not started")

		return
	}

	if consumerGroup == "" {
		consumerGroup = k.cfg.Kafka.ConsumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.cfg.Kafka.Brokers,
		Topic:       topic,
		GroupID:     consumerGroup,
		StartOffset: kafkaGo.LastOffset,
		Dialer: &kafkaGo.Dialer{
			Timeout:       writeTimeout,
			DualStack:     true,
			SASLMechanism: k.mechanism,
		},
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
		}
	}()

	logger := log.With().Str("topic", topic).Str("group", consumerGroup).Logger()
	logger.Info().Msg("kafka consumer started")

	for {
		msg, err := reader.ReadMessage(ctx)

		switch {
		case ctx.Err() != nil:
			logger.Info().Msg("kafka consumer stopped")

			return
		case err != nil:
			logger.Error().Err(err).Msg("failed to read kafka message")

			select {
			case <-ctx.Done():
			case <-time.After(readRetryDelay):
			}

			continue
		}

		logger.Debug().Str("key", string(msg.Key)).Int64("offset", msg.Offset).Msg("kafka message received")

		handler(msg)
	}
}

type disabled struct{}

func (disabled) SendMessages(_ context.Context, topic string, messages ...Message) error {
	log.Trace().Str("topic", topic).Int("count", len(messages)).Msg("kafka disabled, dropping messages")

	return nil
}

func (disabled) Consume(ctx context.Context, _, _ string, _ func(message kafkaGo.Message)) {
	<-ctx.Done()
}
