package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"clinic/internal/entities"
	"clinic/pkg/sl"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Kafka publishes notification records to a topic. Publishing is fire and
// forget: producer errors are only logged.
type Kafka struct {
	producer sarama.AsyncProducer
	topic    string
	log      *slog.Logger
	done     chan struct{}
}

func New(addr []string, topic string, log *slog.Logger) (*Kafka, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Errors = true

	producer, err := sarama.NewAsyncProducer(addr, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer, err: %s", err.Error())
	}

	return NewWithProducer(producer, topic, log), nil
}

func NewWithProducer(producer sarama.AsyncProducer, topic string, log *slog.Logger) *Kafka {
	k := &Kafka{
		producer: producer,
		topic:    topic,
		log:      log,
		done:     make(chan struct{}),
	}
	go k.drainErrors()
	return k
}

func (k *Kafka) drainErrors() {
	defer close(k.done)

	for perr := range k.producer.Errors() {
		k.log.Error("failed to publish notification", slog.String("topic", k.topic), sl.Error(perr.Err))
	}
}

func (k *Kafka) Record(ctx context.Context, n entities.Notification) error {
	op := "kafka.Record()"

	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%s: failed to marshal notification: %w", op, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: k.topic,
		Key:   sarama.StringEncoder(uuid.New().String()),
		Value: sarama.ByteEncoder(data),
	}

	select {
	case k.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	}
}

// Close flushes buffered messages and waits for the error drain to finish.
func (k *Kafka) Close() error {
	err := k.producer.Close()
	<-k.done
	return err
}
