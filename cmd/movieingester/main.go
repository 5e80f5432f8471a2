package main

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mkvy/videoclub/movie/internal/validation"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"go.uber.org/zap"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "kafka bootstrap servers")
	topic := flag.String("topic", "movie-ingest", "topic the movie service ingests from")
	fileName := flag.String("file", "./cmd/movieingester/moviesdata.json", "JSON file with movies to import")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Reading movies from file", zap.String("file", *fileName))
	movies, err := readMovies(*fileName)
	if err != nil {
		logger.Fatal("Failed to read movies", zap.Error(err))
	}
	events, skipped := movieEvents(movies, time.Now())
	for _, s := range skipped {
		logger.Warn("Skipping invalid movie", zap.Int("id", s.movie.ID), zap.Strings("violations", s.violations))
	}

	logger.Info("Creating a kafka producer", zap.String("brokers", *brokers))
	producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": *brokers})
	if err != nil {
		logger.Fatal("Failed to create producer", zap.Error(err))
	}
	defer producer.Close()

	if err := produceMovieEvents(*topic, producer, events); err != nil {
		logger.Fatal("Failed to produce movie events", zap.Error(err))
	}
	timeout := 10 * time.Second
	logger.Info("Waiting until all events get produced", zap.Int("events", len(events)), zap.Duration("timeout", timeout))
	if remaining := producer.Flush(int(timeout.Milliseconds())); remaining > 0 {
		logger.Error("Some events were not delivered", zap.Int("remaining", remaining))
	}
}

type skippedMovie struct {
	movie      model.Movie
	violations []string
}

func readMovies(fileName string) ([]model.Movie, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var movies []model.Movie
	if err := json.NewDecoder(f).Decode(&movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// movieEvents turns valid movies into created events and reports the rest.
func movieEvents(movies []model.Movie, now time.Time) ([]model.MovieEvent, []skippedMovie) {
	var (
		events  []model.MovieEvent
		skipped []skippedMovie
	)
	for _, m := range movies {
		m := m
		if v := validation.Validate(&m); len(v) > 0 {
			skipped = append(skipped, skippedMovie{movie: m, violations: v})
			continue
		}
		events = append(events, model.MovieEvent{Type: model.EventTypeCreated, Movie: m, Timestamp: now.Unix()})
	}
	return events, skipped
}

type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
}

func produceMovieEvents(topic string, p producer, events []model.MovieEvent) error {
	for _, event := range events {
		encodedEvent, err := json.Marshal(event)
		if err != nil {
			return err
		}
		if err := p.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(strconv.Itoa(event.Movie.ID)),
			Value:          encodedEvent,
		}, nil); err != nil {
			return err
		}
	}
	return nil
}
