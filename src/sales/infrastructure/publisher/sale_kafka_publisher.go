package publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"palengke/src/sales/domain/entity"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// SaleKafkaPublisher publica eventos de ventas confirmadas/revertidas en un
// topic Kafka para consumidores downstream (reportes, contabilidad).
// Fire-and-forget: un fallo de publicación se loguea y no bloquea la venta.
type SaleKafkaPublisher struct {
	writer  *kafka.Writer
	timeout time.Duration
}

// saleEvent es el payload publicado por venta
type saleEvent struct {
	EventType     string                   `json:"event_type"` // sale.committed | sale.undone
	SaleID        uuid.UUID                `json:"sale_id"`
	SessionID     uuid.UUID                `json:"session_id"`
	LineItems     []entity.PendingLineItem `json:"line_items"`
	TotalQuantity int                      `json:"total_quantity"`
	TotalAmount   string                   `json:"total_amount"`
	Currency      string                   `json:"currency"`
	DisplayLabel  string                   `json:"display_label"`
	OccurredAt    time.Time                `json:"occurred_at"`
}

// NewSaleKafkaPublisher crea un publisher hacia el topic de ventas
func NewSaleKafkaPublisher(topic string, brokers ...string) *SaleKafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &SaleKafkaPublisher{writer: w, timeout: 5 * time.Second}
}

// TapRecorded no publica: el indicador en vivo es efímero
func (p *SaleKafkaPublisher) TapRecorded(sessionID uuid.UUID, update entity.TapUpdate) {}

// OutOfStockTapped no publica
func (p *SaleKafkaPublisher) OutOfStockTapped(sessionID uuid.UUID, productID, productName string) {}

// SaleCommitted publica el evento de venta confirmada
func (p *SaleKafkaPublisher) SaleCommitted(sale *entity.CommittedSale) {
	p.publish("sale.committed", sale)
}

// SaleUndone publica el evento de reversa
func (p *SaleKafkaPublisher) SaleUndone(sale *entity.CommittedSale) {
	p.publish("sale.undone", sale)
}

func (p *SaleKafkaPublisher) publish(eventType string, sale *entity.CommittedSale) {
	event := saleEvent{
		EventType:     eventType,
		SaleID:        sale.ID,
		SessionID:     sale.SessionID,
		LineItems:     sale.LineItems,
		TotalQuantity: sale.TotalQuantity,
		TotalAmount:   sale.TotalAmount.String(),
		Currency:      sale.Currency,
		DisplayLabel:  sale.DisplayLabel,
		OccurredAt:    time.Now(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("❌ Failed to marshal %s event for sale %s: %v", eventType, sale.ID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(sale.ID.String()),
		Value: payload,
	})
	if err != nil {
		log.Printf("❌ Failed to publish %s event for sale %s: %v", eventType, sale.ID, err)
		return
	}
}

// Close cierra el writer de Kafka
func (p *SaleKafkaPublisher) Close() error {
	return p.writer.Close()
}
