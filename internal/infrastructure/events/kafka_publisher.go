package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"farmacia_xpto/internal/usecase/interfaces"

	"github.com/IBM/sarama"
)

const paymentResolvedTopic = "payments.resolved"

// KafkaPublisher fans PaymentResolved events out through Kafka. Keyed by
// order id so every event of one order lands on the same partition, in order.

type KafkaPublisher struct {
	producer sarama.SyncProducer
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string) (*KafkaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating kafka producer: %w", err)
	}
	log.Printf("[payment][events] kafka publisher initialized brokers=%v", brokers)
	return &KafkaPublisher{producer: producer}, nil
}

func (p *KafkaPublisher) PublishPaymentResolved(_ context.Context, evt interfaces.PaymentResolvedEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshaling event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: paymentResolvedTopic,
		Key:   sarama.StringEncoder(evt.OrderID),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		log.Printf("[payment][events] publish failed payment_id=%s err=%v", evt.PaymentID, err)
		return fmt.Errorf("sending message: %w", err)
	}

	log.Printf("[payment][events] published payment_id=%s order_id=%s status=%s partition=%d offset=%d", evt.PaymentID, evt.OrderID, evt.Status, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
