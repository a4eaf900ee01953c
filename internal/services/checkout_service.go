package services

import (
	"fmt"
	"log"
	"strings"

	"beautyshop/internal/models"
	"beautyshop/internal/repositories"
	"beautyshop/pkg/rabbitmq"

	"github.com/google/uuid"
)

// CheckoutItem is one line of the cart snapshot the client submits at
// checkout: product identity, the unit price the client saw, and quantity.
type CheckoutItem struct {
	ID       uint    `json:"id"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest is the full checkout input contract.
type CheckoutRequest struct {
	UserID          uint           `json:"userId"`
	Items           []CheckoutItem `json:"items"`
	RecipientName   string         `json:"recipientName"`
	PhoneNumber     string         `json:"phoneNumber"`
	DeliveryAddress string         `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// CheckoutService is the order commit engine. Given a checkout request it
// atomically materializes the order header and its line snapshots and empties
// the user's cart, or leaves no persisted trace at all.
type CheckoutService struct {
	tx       repositories.TxManager
	mqClient *rabbitmq.Client // nil skips event publication
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(tx repositories.TxManager, mqClient *rabbitmq.Client) *CheckoutService {
	return &CheckoutService{
		tx:       tx,
		mqClient: mqClient,
	}
}

// validate rejects a malformed request before any store access. Everything
// here runs outside the transaction: a validation failure must produce zero
// database writes.
func (s *CheckoutService) validate(req CheckoutRequest) error {
	if req.UserID == 0 {
		return fmt.Errorf("%w: missing userId", ErrInvalidRequest)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", ErrInvalidRequest)
	}
	for _, item := range req.Items {
		if item.ID == 0 || item.Quantity <= 0 || item.Price < 0 {
			return fmt.Errorf("%w: malformed order item", ErrInvalidRequest)
		}
	}
	if strings.TrimSpace(req.RecipientName) == "" {
		return fmt.Errorf("%w: missing recipientName", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: missing phoneNumber", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return fmt.Errorf("%w: missing deliveryAddress", ErrInvalidRequest)
	}
	if req.PaymentMethod != models.PaymentMethodCard && req.PaymentMethod != models.PaymentMethodCash {
		return fmt.Errorf("%w: paymentMethod must be %s or %s",
			ErrInvalidRequest, models.PaymentMethodCard, models.PaymentMethodCash)
	}
	return nil
}

// Checkout commits an order for the request and returns the new order ID.
//
// The total is derived from the submitted line prices, and each line's price
// is snapshotted verbatim into the order, keeping the order historically
// accurate regardless of later catalog price changes. All writes (order
// header, line snapshots, cart clear) happen inside a single transaction:
// any failure rolls the whole set back and surfaces as ErrCheckoutFailed.
func (s *CheckoutService) Checkout(req CheckoutRequest) (uint, error) {
	if err := s.validate(req); err != nil {
		return 0, err
	}

	var totalAmount float64
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	order := models.Order{
		UserID:          req.UserID,
		TotalAmount:     totalAmount,
		Status:          models.OrderStatusPending,
		RecipientName:   req.RecipientName,
		PhoneNumber:     req.PhoneNumber,
		DeliveryAddress: req.DeliveryAddress,
		PaymentMethod:   req.PaymentMethod,
	}

	err := s.tx.WithinTx(func(r repositories.TxRepos) error {
		if err := r.Orders().Create(&order); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, models.OrderItem{
				OrderID:      order.ID,
				ProductID:    item.ID,
				Quantity:     item.Quantity,
				PriceAtOrder: item.Price,
			})
		}
		if err := r.Orders().CreateItems(items); err != nil {
			return err
		}

		return r.Carts().Clear(req.UserID)
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}

	s.publishOrderCreated(order)

	return order.ID, nil
}

// publishOrderCreated emits the order.created event after a successful
// commit. Publication is best-effort: the order is already durable, so an MQ
// failure is logged and swallowed.
func (s *CheckoutService) publishOrderCreated(order models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping order event publication.")
		return
	}

	event := rabbitmq.OrderCreatedEvent{
		EventID:     uuid.New().String(),
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
	}
	if err := s.mqClient.PublishOrderCreated(event); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %d: %v", order.ID, err)
	}
}
