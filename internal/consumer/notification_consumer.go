package consumer

import (
	"encoding/json"
	"log"

	"github.com/kev-n-dev/sky-way/pkg/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
)

// NotificationConsumer turns booking.* events into confirmation
// notifications for the booking owner.
type NotificationConsumer struct{}

func NewNotificationConsumer() *NotificationConsumer {
	return &NotificationConsumer{}
}

// Start listens for booking events and dispatches notifications.
func (nc *NotificationConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			nc.handleMessage(msg)
		}
		log.Println("[NotificationConsumer] channel closed, stopping consumer")
	}()
}

func (nc *NotificationConsumer) handleMessage(msg amqp.Delivery) {
	var event rabbitmq.BookingEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[NotificationConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	switch msg.RoutingKey {
	case "booking.paid":
		log.Printf("[NotificationConsumer] payment receipt for booking %s to %s", event.ReferenceNumber, event.OwnerEmail)
	default:
		log.Printf("[NotificationConsumer] booking confirmation %s to %s", event.ReferenceNumber, event.OwnerEmail)
	}

	msg.Ack(false)
}
