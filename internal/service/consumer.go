package service

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"myfooddesk/internal/domain"
)

// Consumer keeps the daily sales aggregates fresh from order events.
type Consumer struct {
	Reader *kafka.Reader
	Sales  SalesCache
}

func NewConsumer(reader *kafka.Reader, sales SalesCache) *Consumer {
	return &Consumer{Reader: reader, Sales: sales}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Printf("[aggregator] consuming order events")
	for {
		msg, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[aggregator] read message: %v", err)
			continue
		}

		var evt domain.OrderEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			log.Printf("[aggregator] skipping malformed event: %v", err)
			continue
		}
		if err := c.Process(ctx, evt); err != nil {
			log.Printf("[aggregator] process event for order %d: %v", evt.OrderID, err)
		}
	}
}

// Process folds one event into the aggregates. Only completions count toward
// sales; placements and cancellations are ignored here.
func (c *Consumer) Process(ctx context.Context, evt domain.OrderEvent) error {
	if evt.Type != domain.EventOrderCompleted {
		return nil
	}

	dateKey := evt.Timestamp.Local().Format("2006-01-02")
	for _, it := range evt.Items {
		if err := c.Sales.IncrementProductQty(ctx, dateKey, it.ProductID, it.Qty); err != nil {
			return err
		}
	}
	return c.Sales.AddRevenue(ctx, dateKey, evt.TotalAmount)
}
