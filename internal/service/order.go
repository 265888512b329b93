package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rms-backend/internal/domain"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrTokensExhausted = errors.New("could not allocate a unique order id")
)

const (
	defaultOrderUser   = "Guest"
	defaultOrderMethod = "online"

	// Retries when a freshly generated token collides with a stored one.
	tokenAttempts = 5
)

type OrderLineInput struct {
	ID  int  `json:"id"`
	Qty *int `json:"qty"`
}

type OrderInput struct {
	UserName string
	Items    []OrderLineInput
	Method   string
	Total    float64
}

type OrderService struct {
	restaurants RestaurantRepository
	repo        OrderRepository
	cache       OrderTokenCache
	publisher   EventPublisher
	qrEncoder   QRGenerator
}

func NewOrderService(restaurants RestaurantRepository, repo OrderRepository, cache OrderTokenCache, publisher EventPublisher, qr QRGenerator) *OrderService {
	return &OrderService{
		restaurants: restaurants,
		repo:        repo,
		cache:       cache,
		publisher:   publisher,
		qrEncoder:   qr,
	}
}

// Place stores the order under a fresh short token and bumps order_count on
// every referenced menu item by its quantity. Line items that don't resolve
// within the restaurant are skipped without failing the order.
func (s *OrderService) Place(ctx context.Context, restaurantID int, input OrderInput) (string, error) {
	rest, err := s.restaurants.GetRestaurant(restaurantID)
	if err != nil {
		return "", fmt.Errorf("failed to load restaurant: %w", err)
	}
	if rest == nil {
		return "", ErrRestaurantNotFound
	}

	order := &domain.Order{
		RestaurantID: restaurantID,
		UserName:     input.UserName,
		Lines:        normalizeLines(input.Items),
		Total:        input.Total,
		Method:       input.Method,
	}
	if order.UserName == "" {
		order.UserName = defaultOrderUser
	}
	if order.Method == "" {
		order.Method = defaultOrderMethod
	}

	for attempt := 0; attempt < tokenAttempts; attempt++ {
		token, err := NewOrderToken()
		if err != nil {
			return "", fmt.Errorf("failed to generate order id: %w", err)
		}

		var markerKey string
		if s.cache != nil {
			markerKey = s.cache.OrderMarkerKey(token)
			if taken, _ := s.cache.Exists(ctx, markerKey); taken {
				continue
			}
		}

		order.ID = token
		err = s.repo.CreateOrder(order)
		if errors.Is(err, domain.ErrDuplicateOrderID) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create order: %w", err)
		}

		if s.cache != nil {
			_ = s.cache.SetMarker(ctx, markerKey)
		}
		if s.publisher != nil {
			_ = s.publisher.PublishEvent(ctx, domain.Event{
				Type:         "order_placed",
				RestaurantID: restaurantID,
				OrderID:      token,
				Total:        order.Total,
				Timestamp:    time.Now(),
			})
		}
		return token, nil
	}
	return "", ErrTokensExhausted
}

// QRCode renders a PNG linking to the order, scoped to the restaurant.
func (s *OrderService) QRCode(ctx context.Context, restaurantID int, orderID string) ([]byte, error) {
	order, err := s.repo.GetOrder(restaurantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.qrEncoder.Generate(order.ID)
}

// normalizeLines applies the default quantity of 1 to lines that omit it.
func normalizeLines(items []OrderLineInput) []domain.OrderLine {
	lines := make([]domain.OrderLine, 0, len(items))
	for _, item := range items {
		qty := 1
		if item.Qty != nil {
			qty = *item.Qty
		}
		lines = append(lines, domain.OrderLine{ID: item.ID, Qty: qty})
	}
	return lines
}

var _ OrderServiceInterface = (*OrderService)(nil)
