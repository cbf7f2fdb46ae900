package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"roombook/config"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	writerBatchTimeout = 50 * time.Millisecond
	readerRetryBackoff = time.Second
)

type Message struct {
	Key   string
	Value any
}

func (m *Message) ToKafkaMessage() (kafkaGo.Message, error) {
	jsonValue, err := json.Marshal(m.Value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal message value to JSON")

		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	return kafkaGo.Message{
		Key:   []byte(m.Key),
		Value: jsonValue,
	}, nil
}

// DecodeKafkaMessage unmarshals the JSON value of msg into T.
func DecodeKafkaMessage[T any](msg kafkaGo.Message) (T, error) {
	var value T

	err := json.Unmarshal(msg.Value, &value)
	if err != nil {
		log.Error().Err(err).Msg("Failed to unmarshal Kafka message value from JSON")

		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Handler func(ctx context.Context, message kafkaGo.Message) error

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
	Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error
	Close() error
}

type kafkaClientImpl struct {
	config    *config.Config
	dialer    *kafkaGo.Dialer
	transport *kafkaGo.Transport

	mu      sync.Mutex
	writers map[string]*kafkaGo.Writer
}

// New returns a broker backed client, or a client that drops every message
// when KAFKA_ENABLE is false.
func New(config *config.Config) Client {
	if !config.Kafka.Enable || len(config.Kafka.Brokers) == 0 {
		log.Warn().Msg("Kafka disabled, booking events will not be published")

		return &noopClient{}
	}

	var mechanism sasl.Mechanism
	if config.Kafka.SASL.Username != "" {
		mechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		dialer: &kafkaGo.Dialer{
			DualStack:     true,
			SASLMechanism: mechanism,
		},
		transport: &kafkaGo.Transport{
			SASL: mechanism,
		},
		writers: map[string]*kafkaGo.Writer{},
	}
}

func (k *kafkaClientImpl) writer(topic string) *kafkaGo.Writer {
	k.mu.Lock()
	defer k.mu.Unlock()

	if writer, ok := k.writers[topic]; ok {
		return writer
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(k.config.Kafka.Brokers...),
		Topic:                  topic,
		Transport:              k.transport,
		Balancer:               &kafkaGo.Hash{},
		BatchTimeout:           writerBatchTimeout,
		AllowAutoTopicCreation: true,
	}
	k.writers[topic] = writer

	return writer
}

func (k *kafkaClientImpl) reader(consumerGroup, topic string) *kafkaGo.Reader {
	groupID := k.config.Kafka.ConsumerGroup
	if consumerGroup != "" {
		groupID = consumerGroup
	}

	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     groupID,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) (err error) {
	if topic == "" {
		return errors.New("kafka topic is required")
	}

	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to convert message to Kafka message.")

			return fmt.Errorf("failed to convert message to Kafka message: %w", err)
		}

		msgs = append(msgs, msg)
	}

	err = k.writer(topic).WriteMessages(ctx, msgs...)
	if err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

// Consume reads topic until ctx is done. Offsets are committed only after
// handler succeeds.
func (k *kafkaClientImpl) Consume(ctx context.Context, consumerGroup, topic string, handler Handler) error {
	if topic == "" {
		return errors.New("kafka topic is required")
	}

	reader := k.reader(consumerGroup, topic)
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka reader.")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer context done.")

				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("Failed to read message from Kafka.")
			time.Sleep(readerRetryBackoff)

			continue
		}

		log.Debug().Str("topic", topic).Str("key", string(msg.Key)).Msg("Received message from Kafka.")

		if err := handler(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to handle Kafka message.")

			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to commit Kafka message.")
		}
	}
}

func (k *kafkaClientImpl) Close() error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var errs []error

	for topic, writer := range k.writers {
		if err := writer.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close writer for %s: %w", topic, err))
		}
	}

	k.writers = map[string]*kafkaGo.Writer{}

	return errors.Join(errs...)
}

type noopClient struct{}

func (n *noopClient) SendMessages(_ context.Context, _ string, _ ...Message) error {
	return nil
}

func (n *noopClient) Consume(ctx context.Context, _, topic string, _ Handler) error {
	log.Warn().Str("topic", topic).Msg("Kafka disabled, consumer idle until shutdown")
	<-ctx.Done()

	return nil
}

func (n *noopClient) Close() error {
	return nil
}
