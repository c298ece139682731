package service_test

import (
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/internal/service"
	"github.com/liris-lib/library-service/pkg/kafka"
)

func TestEnqueuer_Enqueue(t *testing.T) {
	t.Parallel()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	producer := mocks.NewSyncProducer(t, cfg)
	defer func() { require.NoError(t, producer.Close()) }()

	event := model.BorrowingEvent{
		EventID:     "e3b7c9d0-0000-4000-8000-000000000001",
		Action:      model.EventBorrowed,
		BorrowingID: 42,
		CopyID:      7,
		Email:       "bob@liris.fr",
	}
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(data []byte) error {
		var got model.BorrowingEvent
		if err := jsoniter.Unmarshal(data, &got); err != nil {
			return err
		}
		require.Equal(t, event, got)
		return nil
	})

	q := service.NewEnqueuer(producer)
	require.NoError(t, q.Enqueue(kafka.BorrowingsTopic, event))
}

func TestEnqueuer_NilProducer(t *testing.T) {
	t.Parallel()

	q := service.NewEnqueuer(nil)
	require.NoError(t, q.Enqueue(kafka.BorrowingsTopic, model.BorrowingEvent{}))
}
