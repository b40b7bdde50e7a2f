// Package kafka publishes dispatch notifications to a Kafka topic. Downstream
// push services consume the topic and fan the offers out to rider devices.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/offer"
	"dispatch/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

const publishTimeout = 2 * time.Second

// offerCreatedEvent is the wire format for offer notifications. Keyed by
// order ID so all offers for one order land in the same partition, in order.
type offerCreatedEvent struct {
	OfferID        string    `json:"offer_id"`
	OrderID        string    `json:"order_id"`
	RiderID        string    `json:"rider_id"`
	PickupLat      float64   `json:"pickup_lat"`
	PickupLng      float64   `json:"pickup_lng"`
	DropLat        float64   `json:"drop_lat"`
	DropLng        float64   `json:"drop_lng"`
	DistanceKm     float64   `json:"distance_km"`
	RiderEarnings  int       `json:"rider_earnings"`
	PackageDetails string    `json:"package_details"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// OfferNotifier implements ports.OfferNotifier on top of a Kafka writer.
type OfferNotifier struct {
	writer *kafka.Writer
	log    *slog.Logger
}

// NewOfferNotifier creates a notifier publishing to the given brokers and topic.
func NewOfferNotifier(brokers []string, topic string, log *slog.Logger) *OfferNotifier {
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.Hash{},
	})

	return &OfferNotifier{
		writer: writer,
		log:    log.With("component", "kafka-notifier"),
	}
}

// NotifyOfferCreated publishes the offer to the topic. Called after the
// creating transaction commits; a publish failure is logged and returned but
// never blocks dispatch, since the expiry sweep re-drives unanswered offers.
func (n *OfferNotifier) NotifyOfferCreated(
	ctx context.Context, ord *order.Order, created *offer.Offer,
) error {
	event := offerCreatedEvent{
		OfferID:        created.ID().String(),
		OrderID:        ord.ID().String(),
		RiderID:        created.RiderID().String(),
		PickupLat:      ord.Pickup().Lat(),
		PickupLng:      ord.Pickup().Lng(),
		DropLat:        ord.Drop().Lat(),
		DropLng:        ord.Drop().Lng(),
		DistanceKm:     ord.DistanceKm(),
		RiderEarnings:  ord.Fare().RiderEarnings(),
		PackageDetails: ord.PackageDetails(),
	}
	if expiresAt := ord.OfferExpiresAt(); expiresAt != nil {
		event.ExpiresAt = *expiresAt
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		n.log.Error("offer notification failed",
			"order_id", event.OrderID, "rider_id", event.RiderID, "error", err)
		return err
	}

	n.log.Info("offer notification published",
		"order_id", event.OrderID, "rider_id", event.RiderID)
	return nil
}

// Close flushes and closes the underlying writer.
func (n *OfferNotifier) Close() error {
	if n.writer == nil {
		return nil
	}
	return n.writer.Close()
}
