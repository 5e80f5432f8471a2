package kafka

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mkvy/videoclub/movie/pkg/model"
)

const flushTimeoutMs = 5000

type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Publisher defines a Kafka publisher of movie change events.
type Publisher struct {
	producer producer
	topic    string
}

// NewPublisher creates a new Kafka movie event publisher.
func NewPublisher(addr string, topic string) (*Publisher, error) {
	p, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": addr})
	if err != nil {
		return nil, err
	}
	return &Publisher{producer: p, topic: topic}, nil
}

// Publish enqueues a movie event, keyed by movie id so that events of one movie stay ordered.
func (p *Publisher) Publish(_ context.Context, event model.MovieEvent) error {
	encoded, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.topic, Partition: kafka.PartitionAny},
		Key:            []byte(strconv.Itoa(event.Movie.ID)),
		Value:          encoded,
	}, nil)
}

// Close flushes outstanding events and closes the producer.
func (p *Publisher) Close() {
	p.producer.Flush(flushTimeoutMs)
	p.producer.Close()
}
