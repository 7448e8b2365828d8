package rabbit

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/models"
	"github.com/Temutjin2k/ride-fare-aggregator/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-fare-aggregator/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-fare-aggregator/pkg/metrics"
)

const FareExchange = "fare_topic"

// Publisher is the part of the rabbit client the broker needs.
type Publisher interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error
}

type FareBroker struct {
	client   Publisher
	exchange string
}

func NewFareBroker(client Publisher, exchange string) *FareBroker {
	if exchange == "" {
		exchange = FareExchange
	}
	return &FareBroker{client: client, exchange: exchange}
}

// PublishReportCaptured sends msg to the fare exchange with key
// 'fare.report.captured'. It is attempted once.
func (b *FareBroker) PublishReportCaptured(ctx context.Context, msg models.FareReportCapturedMessage) (err error) {
	ctx = wrap.WithAction(ctx, "rabbitmq_publish_report_captured")
	defer func() { metrics.RecordRabbitMQPublish(b.exchange, err) }()

	body, err := json.Marshal(msg)
	if err != nil {
		return wrap.Error(ctx, fmt.Errorf("failed to marshal message: %w", err))
	}

	if err := b.client.Publish(ctx, b.exchange, types.EventReportCaptured.String(), amqp.Publishing{
		ContentType:   "application/json",
		CorrelationId: msg.CorrelationID,
		MessageId:     msg.ReportID.String(),
		Timestamp:     msg.CapturedAt,
		Body:          body,
	}); err != nil {
		return wrap.Error(ctx, err)
	}
	return nil
}
