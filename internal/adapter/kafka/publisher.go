package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"adpulse/internal/core/domain"
)

// Publisher writes metric events to a Kafka topic keyed by campaign,
// so updates to one campaign stay ordered within a partition. Writes are
// asynchronous; failed batches are reported to the error hook.
type Publisher struct {
	writer  *kafka.Writer
	onError func(failed int, err error)
}

// NewPublisher returns a publisher writing to topic on brokers. onError,
// if set, is called once per batch the brokers did not accept.
func NewPublisher(brokers []string, topic string, onError func(failed int, err error)) *Publisher {
	p := &Publisher{onError: onError}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   p.complete,
	}
	return p
}

func (p *Publisher) complete(messages []kafka.Message, err error) {
	if err != nil && p.onError != nil {
		p.onError(len(messages), err)
	}
}

// PublishMetric encodes event as JSON and queues it. Only encoding
// errors are returned; delivery errors go to the error hook.
func (p *Publisher) PublishMetric(ctx context.Context, event domain.MetricEvent) error {
	msg, err := encode(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func encode(event domain.MetricEvent) (kafka.Message, error) {
	v, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.CampaignID),
		Value: v,
		Time:  time.UnixMilli(event.At),
		Headers: []kafka.Header{
			{Key: "source", Value: []byte(event.Source)},
		},
	}, nil
}

// Nop discards events. It is used when no brokers are configured.
type Nop struct{}

func (Nop) PublishMetric(context.Context, domain.MetricEvent) error { return nil }
func (Nop) Close() error                                            { return nil }
