package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	domainJob "github.com/NeuralTrust/TrustIntent/pkg/domain/job"
	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/mitchellh/mapstructure"
)

const PublisherName = "kafka"

type Config struct {
	Host  string `mapstructure:"host"`
	Port  string `mapstructure:"port"`
	Topic string `mapstructure:"topic"`
}

// producer is the subset of *kafka.Producer the publisher relies on.
type producer interface {
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	Flush(timeoutMs int) int
	Close()
}

// Event is the message written for every finished job. The scoring output
// itself stays in the job store.
type Event struct {
	JobID      string                 `json:"job_id"`
	Status     domainJob.Status       `json:"status"`
	Params     map[string]interface{} `json:"params,omitempty"`
	Error      string                 `json:"error,omitempty"`
	OutputSize int                    `json:"output_size"`
	FinishedAt string                 `json:"finished_at"`
}

type Publisher struct {
	cfg      Config
	producer producer
}

func ValidateConfig(settings map[string]interface{}) (Config, error) {
	var conf Config
	if err := mapstructure.Decode(settings, &conf); err != nil {
		return Config{}, fmt.Errorf("invalid kafka config: %w", err)
	}
	if conf.Host == "" {
		return Config{}, errors.New("kafka host is required")
	}
	if conf.Port == "" {
		return Config{}, errors.New("kafka port is required")
	}
	if conf.Topic == "" {
		return Config{}, errors.New("kafka topic is required")
	}
	return conf, nil
}

func NewPublisher(settings map[string]interface{}) (*Publisher, error) {
	conf, err := ValidateConfig(settings)
	if err != nil {
		return nil, err
	}
	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": fmt.Sprintf("%s:%s", conf.Host, conf.Port),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return &Publisher{cfg: conf, producer: p}, nil
}

func (p *Publisher) Name() string {
	return PublisherName
}

func (p *Publisher) Publish(ctx context.Context, result *domainJob.Result) error {
	if p.producer == nil {
		return errors.New("kafka producer is not initialized")
	}
	data, err := json.Marshal(Event{
		JobID:      result.JobID.String(),
		Status:     result.Status,
		Params:     result.Params,
		Error:      result.Error,
		OutputSize: len(result.Output),
		FinishedAt: result.FinishedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &p.cfg.Topic, Partition: kafka.PartitionAny},
		Key:            []byte(result.JobID.String()),
		Value:          data,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("failed to produce message: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("unexpected delivery event %T", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("delivery failed: %w", m.TopicPartition.Error)
		}
	}
	return nil
}

func (p *Publisher) Close() {
	if p.producer != nil {
		p.producer.Flush(5000)
		p.producer.Close()
	}
}
