package notify

import (
	"fmt"

	"orderflow/internal/domain"
)

// OnTransition derives the notification requests an accepted transition
// fans out. received notifies the customer, ready notifies the waiter,
// cancelled notifies both; every other transition is history-only.
func OnTransition(order *domain.Order, from, to domain.Status) []domain.NotificationRequest {
	switch to {
	case domain.StatusReceived:
		return []domain.NotificationRequest{
			request(order, domain.AudienceCustomer, domain.NotificationAccepted,
				fmt.Sprintf("Order #%d was accepted by the kitchen", order.OrderNumber)),
		}
	case domain.StatusReady:
		return []domain.NotificationRequest{
			request(order, domain.AudienceWaiter, domain.NotificationReady,
				fmt.Sprintf("Order #%d is ready to serve", order.OrderNumber)),
		}
	case domain.StatusCancelled:
		message := fmt.Sprintf("Order #%d was cancelled", order.OrderNumber)
		return []domain.NotificationRequest{
			request(order, domain.AudienceWaiter, domain.NotificationCancelled, message),
			request(order, domain.AudienceCustomer, domain.NotificationCancelled, message),
		}
	default:
		return nil
	}
}

func request(order *domain.Order, audience domain.Audience, kind domain.NotificationType, message string) domain.NotificationRequest {
	return domain.NotificationRequest{
		RestaurantID: order.RestaurantID,
		OrderID:      order.ID,
		Audience:     audience,
		Type:         kind,
		Message:      message,
	}
}
