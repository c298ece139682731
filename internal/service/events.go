package service

import (
	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/liris-lib/library-service/internal/model"
	"github.com/liris-lib/library-service/pkg/kafka"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

type Enqueuer interface {
	Enqueue(topic string, v any) error
}

// NewEnqueuer wraps a sarama producer. A nil producer yields a no-op
// enqueuer so the service runs without Kafka configured.
func NewEnqueuer(producer sarama.SyncProducer) Enqueuer {
	if producer == nil {
		return noopEnqueuer{}
	}
	return &enqueuerImpl{producer: producer}
}

type enqueuerImpl struct {
	producer sarama.SyncProducer
}

func (q *enqueuerImpl) Enqueue(topic string, v any) error {
	data, err := jsonCodec.Marshal(v)
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{Topic: topic, Value: sarama.StringEncoder(data)}
	if _, _, err = q.producer.SendMessage(msg); err != nil {
		return err
	}
	return nil
}

type noopEnqueuer struct{}

func (noopEnqueuer) Enqueue(string, any) error { return nil }

func (s *Service) publishBorrowingEvent(event model.BorrowingEvent) {
	if err := s.enqueuer.Enqueue(kafka.BorrowingsTopic, event); err != nil {
		s.log.Warn("borrowing event not published", zap.Error(err))
	}
}
