package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"go.uber.org/zap"
)

const pollTimeout = 100 * time.Millisecond

type consumer interface {
	SubscribeTopics(topics []string, rebalanceCb kafka.RebalanceCb) error
	ReadMessage(timeout time.Duration) (*kafka.Message, error)
	Close() error
}

// Ingester defines a Kafka ingester of movie events.
type Ingester struct {
	consumer consumer
	topic    string
	logger   *zap.Logger
}

// NewIngester creates a new Kafka ingester.
func NewIngester(addr string, groupID string, topic string, logger *zap.Logger) (*Ingester, error) {
	c, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	return &Ingester{consumer: c, topic: topic, logger: logger}, nil
}

// Ingest starts consuming movie events. The returned channel is closed
// and the consumer released once ctx is done.
func (i *Ingester) Ingest(ctx context.Context) (chan model.MovieEvent, error) {
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return nil, err
	}
	ch := make(chan model.MovieEvent, 1)
	go func() {
		defer close(ch)
		defer i.consumer.Close()
		for {
			if ctx.Err() != nil {
				return
			}
			msg, err := i.consumer.ReadMessage(pollTimeout)
			if err != nil {
				var kerr kafka.Error
				if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
					continue
				}
				i.logger.Warn("Consumer error", zap.Error(err))
				continue
			}
			var event model.MovieEvent
			if err := json.Unmarshal(msg.Value, &event); err != nil {
				i.logger.Warn("Skipping malformed movie event", zap.Error(err))
				continue
			}
			select {
			case ch <- event:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}
