package service

import (
	"context"

	"rms-backend/internal/domain"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (*domain.LoginResponse, error)
}

type RestaurantServiceInterface interface {
	List(ctx context.Context) ([]domain.RestaurantListItem, error)
	FullView(ctx context.Context, id int) (*domain.RestaurantFullView, error)
	Delete(ctx context.Context, id int) error
	AddMenuItem(ctx context.Context, restaurantID int, name string, price float64, img string) (*domain.MenuItemView, error)
	UpsertTable(ctx context.Context, restaurantID int, num, status string) (*domain.TableView, error)
	AddBooking(ctx context.Context, restaurantID int, input BookingInput) (*domain.BookingView, error)
	LogIncome(ctx context.Context, restaurantID int, amount float64) error
	AddFeedback(ctx context.Context, restaurantID int, input FeedbackInput) error
}

type OrderServiceInterface interface {
	Place(ctx context.Context, restaurantID int, input OrderInput) (string, error)
	QRCode(ctx context.Context, restaurantID int, orderID string) ([]byte, error)
}

// Repositories are the storage contracts the services depend on. Lookups
// return (nil, nil) when the row is absent so services can map absence to
// their own sentinel errors.

type AccountRepository interface {
	GetUserByEmail(email string) (*domain.User, error)
	// CreateUser persists the user, and when restaurant is non-nil creates
	// it first and links it, all in one transaction.
	CreateUser(user *domain.User, restaurant *domain.Restaurant) error
}

type RestaurantRepository interface {
	ListRestaurantSummaries() ([]domain.RestaurantSummary, error)
	GetRestaurant(id int) (*domain.Restaurant, error)
	// DeleteRestaurant removes the restaurant and every owned child row in
	// one transaction, returning the number of restaurant rows removed.
	DeleteRestaurant(id int) (int64, error)

	ListMenuItems(restaurantID int) ([]domain.MenuItem, error)
	CreateMenuItem(item *domain.MenuItem) error

	ListTablesWithBookings(restaurantID int) ([]domain.Table, error)
	GetTableByNum(restaurantID int, num string) (*domain.Table, error)
	CreateTable(table *domain.Table) error
	UpdateTableStatus(id int, status string) error
	CreateBooking(booking *domain.Booking) error

	ListIncomes(restaurantID int) ([]domain.Income, error)
	CreateIncome(income *domain.Income) error

	ListFeedback(restaurantID int) ([]domain.Feedback, error)
	CreateFeedback(fb *domain.Feedback) error
}

type OrderRepository interface {
	ListOrders(restaurantID int) ([]domain.Order, error)
	GetOrder(restaurantID int, orderID string) (*domain.Order, error)
	// CreateOrder inserts the order and increments order_count on each
	// resolvable menu item in the same transaction. Returns
	// domain.ErrDuplicateOrderID when the id is already taken.
	CreateOrder(order *domain.Order) error
}

type OrderTokenCache interface {
	OrderMarkerKey(token string) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, evt domain.Event) error
}
