// Package messaging consumes payment confirmation events from Kafka.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"agency_backoffice/internal/config"
	"agency_backoffice/internal/domain/policy"
	"agency_backoffice/internal/usecase"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	maxHandleAttempts = 3
	retryBackoff      = time.Second
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentConsumer feeds {budgetId, type, confirmed} messages into the payment
// events use case. Offsets are committed after handling; undecodable messages
// and permanent failures are committed so they never block the partition.
type PaymentConsumer struct {
	reader  messageReader
	events  usecase.IPaymentEventsUseCase
	log     *zap.Logger
	backoff time.Duration
}

func NewPaymentConsumer(cfg config.Config, events usecase.IPaymentEventsUseCase, log *zap.Logger) (*PaymentConsumer, error) {
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}
	if cfg.KafkaPaymentsTopic == "" || cfg.KafkaConsumerGroup == "" {
		return nil, errors.New("kafka topic and consumer group are required")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.KafkaBrokers,
		Topic:          cfg.KafkaPaymentsTopic,
		GroupID:        cfg.KafkaConsumerGroup,
		MinBytes:       1,
		MaxBytes:       1 << 20,
		MaxWait:        time.Second,
		CommitInterval: 0,
		StartOffset:    kafka.FirstOffset,
	})
	c := newPaymentConsumer(reader, events, log)
	c.log = c.log.With(zap.String("topic", cfg.KafkaPaymentsTopic), zap.String("group", cfg.KafkaConsumerGroup))
	return c, nil
}

func newPaymentConsumer(reader messageReader, events usecase.IPaymentEventsUseCase, log *zap.Logger) *PaymentConsumer {
	return &PaymentConsumer{
		reader:  reader,
		events:  events,
		log:     log.Named("kafka.payments"),
		backoff: retryBackoff,
	}
}

// Run blocks until ctx is cancelled. It always closes the reader.
func (c *PaymentConsumer) Run(ctx context.Context) error {
	defer func() {
		if err := c.reader.Close(); err != nil {
			c.log.Warn("close kafka reader", zap.Error(err))
		}
	}()
	c.log.Info("payment consumer started")

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.log.Info("payment consumer stopped")
				return nil
			}
			c.log.Error("fetch message", zap.Error(err))
			if !sleep(ctx, c.backoff) {
				return nil
			}
			continue
		}

		c.process(ctx, msg)

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.log.Error("commit message", zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func (c *PaymentConsumer) process(ctx context.Context, msg kafka.Message) {
	fields := []zap.Field{zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset)}

	ev, err := decodeEvent(msg.Value)
	if err != nil {
		c.log.Warn("poison message skipped", append(fields, zap.Error(err))...)
		return
	}
	fields = append(fields, zap.String("budget_id", ev.BudgetID), zap.String("type", string(ev.Type)))

	for attempt := 1; ; attempt++ {
		res, err := c.events.Handle(ctx, ev)
		if err == nil {
			c.log.Info("payment event handled", append(fields,
				zap.Bool("ignored", res.Ignored),
				zap.Bool("replayed", res.Result != nil && res.Result.Replayed),
			)...)
			return
		}
		if permanent(err) || attempt >= maxHandleAttempts {
			c.log.Error("payment event dropped", append(fields, zap.Int("attempts", attempt), zap.Error(err))...)
			return
		}
		c.log.Warn("payment event failed, retrying", append(fields, zap.Int("attempt", attempt), zap.Error(err))...)
		if !sleep(ctx, c.backoff*time.Duration(attempt)) {
			return
		}
	}
}

func decodeEvent(raw []byte) (usecase.PaymentEvent, error) {
	var ev usecase.PaymentEvent
	if err := json.Unmarshal(raw, &ev); err != nil {
		return usecase.PaymentEvent{}, fmt.Errorf("decode payment event: %w", err)
	}
	if ev.BudgetID == "" || !ev.Type.Valid() {
		return usecase.PaymentEvent{}, fmt.Errorf("payment event needs budgetId and a valid type, got %q/%q", ev.BudgetID, ev.Type)
	}
	ev.Source = usecase.EventSourceKafka
	return ev, nil
}

// permanent reports errors that a redelivery cannot fix.
func permanent(err error) bool {
	for _, target := range []error{
		usecase.ErrInvalidPaymentEvent,
		usecase.ErrBudgetNotFound,
		usecase.ErrFinalValueRequired,
		policy.ErrInvalidTransition,
		policy.ErrProjectRequired,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
