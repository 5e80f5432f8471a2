package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mkvy/videoclub/movie/internal/validation"
	"github.com/mkvy/videoclub/movie/pkg/model"
	"gopkg.in/yaml.v3"
)

type config struct {
	API      apiConfig      `yaml:"api"`
	GRPC     grpcConfig     `yaml:"grpc"`
	Jaeger   jaegerConfig   `yaml:"jaeger"`
	Registry registryConfig `yaml:"registry"`
	Kafka    kafkaConfig    `yaml:"kafka"`
	Seed     []seedMovie    `yaml:"seed"`
}

type apiConfig struct {
	Port      int `yaml:"port"`
	RateLimit int `yaml:"rateLimit"`
	Burst     int `yaml:"burst"`
}

type grpcConfig struct {
	Port int `yaml:"port"`
}

type jaegerConfig struct {
	URL string `yaml:"url"`
}

type registryConfig struct {
	Address string `yaml:"address"`
}

type kafkaConfig struct {
	Brokers     string `yaml:"brokers"`
	EventsTopic string `yaml:"eventsTopic"`
	IngestTopic string `yaml:"ingestTopic"`
	GroupID     string `yaml:"groupID"`
}

type seedMovie struct {
	ID    int    `yaml:"id"`
	Title string `yaml:"title"`
}

func loadConfig(path string) (*config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate fills defaults and rejects inconsistent settings.
func (c *config) validate() error {
	if c.API.Port == 0 {
		c.API.Port = 8083
	}
	if c.GRPC.Port == 0 {
		c.GRPC.Port = c.API.Port + 1
	}
	if c.API.RateLimit <= 0 {
		c.API.RateLimit = 100
	}
	if c.API.Burst <= 0 {
		c.API.Burst = c.API.RateLimit
	}
	if c.Kafka.Brokers != "" {
		if c.Kafka.EventsTopic == "" || c.Kafka.IngestTopic == "" {
			return errors.New("kafka: eventsTopic and ingestTopic are required when brokers are set")
		}
		if c.Kafka.EventsTopic == c.Kafka.IngestTopic {
			return errors.New("kafka: eventsTopic and ingestTopic must differ")
		}
		if c.Kafka.GroupID == "" {
			c.Kafka.GroupID = "movie"
		}
	}
	for _, s := range c.Seed {
		if v := validation.Validate(s.movie()); len(v) > 0 {
			return fmt.Errorf("seed movie %d: %v", s.ID, v)
		}
	}
	return nil
}

func (s seedMovie) movie() *model.Movie {
	return &model.Movie{ID: s.ID, Title: s.Title}
}

func (c *config) seedMovies() []model.Movie {
	res := make([]model.Movie, 0, len(c.Seed))
	for _, s := range c.Seed {
		res = append(res, *s.movie())
	}
	return res
}
