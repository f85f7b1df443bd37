// Package events publishes completed analyses to Kafka for downstream
// consumers. Publishing is optional and best-effort; the pipeline never
// blocks on it.
package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/IBM/sarama"

	"seoagent/types"
)

// PublisherConfig holds Kafka producer configuration.
type PublisherConfig struct {
	Brokers []string
	Topic   string
}

// Publisher sends one message per completed analysis, keyed by the analyzed
// URL so repeat analyses of a page land on the same partition.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
}

// NewPublisher creates a Kafka publisher.
func NewPublisher(cfg PublisherConfig) (*Publisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Version = sarama.V3_6_0_0
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	saramaConfig.Producer.Retry.Max = 3

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, err
	}

	log.Printf("[events] Kafka publisher started (topic: %s)", cfg.Topic)
	return &Publisher{producer: producer, topic: cfg.Topic}, nil
}

// Publish sends a completed analysis result.
func (p *Publisher) Publish(ctx context.Context, result types.AnalysisResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(result.URL),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return err
	}

	log.Printf("[events] Published analysis of %s (partition=%d, offset=%d)", result.URL, partition, offset)
	return nil
}

// Close gracefully shuts down the producer.
func (p *Publisher) Close() error {
	log.Println("[events] Closing Kafka publisher...")
	return p.producer.Close()
}
