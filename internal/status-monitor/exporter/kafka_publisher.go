package exporter

import (
	"VCS_Status_Monitor/internal/status-monitor/model"
	"VCS_Status_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type kafkaPublisher struct {
	kafka infra.KafkaWriter
}

func (k *kafkaPublisher) Publish(ctx context.Context, service model.Service, result model.CheckResult) error {
	b, err := json.Marshal(newCheckResultEvent(service, result))
	if err != nil {
		return fmt.Errorf("kafkaPublisher.Publish: %w", err)
	}
	err = k.kafka.WriteMessages(ctx, kafka.Message{
		Key:   []byte(result.ServiceID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("kafkaPublisher.Publish: %w", err)
	}
	return nil
}

func (k *kafkaPublisher) Close() error {
	return k.kafka.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{kafka: writer}
}
