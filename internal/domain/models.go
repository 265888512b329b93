package domain

import (
	"errors"
	"time"
)

const (
	UserTypeCustomer   = "customer"
	UserTypeRestaurant = "restaurant"
)

// Errors surfaced by the storage layer that services need to branch on.
var (
	ErrDuplicateEmail   = errors.New("email already registered")
	ErrDuplicateOrderID = errors.New("order id already exists")
)

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Type         string
	RestaurantID *int
}

type Restaurant struct {
	ID   int
	Name string
	Logo string
}

// RestaurantSummary is a restaurant row plus the child counts the list
// view needs, loaded in one query.
type RestaurantSummary struct {
	Restaurant
	MenuCount  int
	TableCount int
}

type MenuItem struct {
	ID           int
	RestaurantID int
	Name         string
	Price        float64
	Img          string
	OrderCount   int
}

type Table struct {
	ID           int
	RestaurantID int
	Num          string
	Status       string
	Bookings     []Booking
}

type Booking struct {
	ID       int
	TableID  int
	UserName string
	Start    string
	End      string
}

type Income struct {
	ID           int
	RestaurantID int
	Amount       float64
	CreatedAt    time.Time
}

type Feedback struct {
	ID            int
	RestaurantID  int
	UserName      string
	CreatedAt     time.Time
	FoodRating    int
	ServiceRating int
	Text          string
}

// OrderLine is one entry of an order's item list. It is also the shape
// persisted as structured JSON in the orders table.
type OrderLine struct {
	ID  int `json:"id"`
	Qty int `json:"qty"`
}

type Order struct {
	ID           string
	RestaurantID int
	UserName     string
	Lines        []OrderLine
	Total        float64
	Method       string
	CreatedAt    time.Time
}

// Event is the message published to Kafka when something analytics-worthy
// happens (order placed, feedback received).
type Event struct {
	Type         string    `json:"type"`
	RestaurantID int       `json:"restaurant_id"`
	OrderID      string    `json:"order_id,omitempty"`
	Total        float64   `json:"total,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
