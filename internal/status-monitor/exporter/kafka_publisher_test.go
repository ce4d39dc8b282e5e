package exporter

import (
	"VCS_Status_Monitor/pkg/infra"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("Success message keyed by service id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockKafka := infra.NewMockKafkaWriter(ctrl)

		var sent []kafka.Message
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msgs ...kafka.Message) error {
			sent = append(sent, msgs...)
			return nil
		})

		err := NewKafkaPublisher(mockKafka).Publish(context.Background(), testService, testResult)
		require.NoError(t, err)
		require.Len(t, sent, 1)
		assert.Equal(t, []byte("api"), sent[0].Key)

		var event CheckResultEvent
		require.NoError(t, json.Unmarshal(sent[0].Value, &event))
		assert.Equal(t, "api", event.ServiceID)
		assert.Equal(t, "API", event.ServiceName)
		assert.Equal(t, "Core", event.Category)
		assert.Equal(t, testResult.Status, event.Status)
		assert.Equal(t, int64(120), *event.ResponseTimeMs)
		assert.True(t, testResult.CheckedAt.Equal(event.CheckedAt))
	})

	t.Run("Failure writer returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockKafka := infra.NewMockKafkaWriter(ctrl)
		errKafka := errors.New("kafka is down")
		mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(errKafka)

		err := NewKafkaPublisher(mockKafka).Publish(context.Background(), testService, testResult)
		assert.ErrorIs(t, err, errKafka)
	})

	t.Run("Close closes writer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockKafka := infra.NewMockKafkaWriter(ctrl)
		mockKafka.EXPECT().Close().Return(nil)
		assert.NoError(t, NewKafkaPublisher(mockKafka).Close())
	})
}
