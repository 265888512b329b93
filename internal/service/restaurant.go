package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rms-backend/internal/domain"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrTableNotFound      = errors.New("table not found")
)

const (
	defaultTableStatus    = "Available"
	anonymousFeedbackName = "Anonymous"
)

type BookingInput struct {
	TableNum string
	UserName string
	Start    string
	End      string
}

type FeedbackInput struct {
	UserName      string
	FoodRating    int
	ServiceRating int
	Text          string
}

type RestaurantService struct {
	repo      RestaurantRepository
	orders    OrderRepository
	publisher EventPublisher
}

func NewRestaurantService(repo RestaurantRepository, orders OrderRepository, publisher EventPublisher) *RestaurantService {
	return &RestaurantService{repo: repo, orders: orders, publisher: publisher}
}

func (s *RestaurantService) List(ctx context.Context) ([]domain.RestaurantListItem, error) {
	summaries, err := s.repo.ListRestaurantSummaries()
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	items := make([]domain.RestaurantListItem, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, summary.ListItem())
	}
	return items, nil
}

// FullView assembles the aggregated restaurant payload: own fields, menu,
// tables, orders, income amounts, feedback, and bookings flattened across
// all tables in table-then-booking stored order.
func (s *RestaurantService) FullView(ctx context.Context, id int) (*domain.RestaurantFullView, error) {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load restaurant: %w", err)
	}
	if rest == nil {
		return nil, ErrRestaurantNotFound
	}

	menu, err := s.repo.ListMenuItems(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}
	tables, err := s.repo.ListTablesWithBookings(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}
	orders, err := s.orders.ListOrders(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	incomes, err := s.repo.ListIncomes(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load incomes: %w", err)
	}
	feedback, err := s.repo.ListFeedback(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load feedback: %w", err)
	}

	logo := rest.Logo
	if logo == "" {
		logo = domain.AvatarURL(rest.Name)
	}

	view := &domain.RestaurantFullView{
		ID:       rest.ID,
		Name:     rest.Name,
		Logo:     logo,
		Menu:     make([]domain.MenuItemView, 0, len(menu)),
		Tables:   make([]domain.TableView, 0, len(tables)),
		Orders:   make([]domain.OrderView, 0, len(orders)),
		Incomes:  make([]float64, 0, len(incomes)),
		Feedback: make([]domain.FeedbackView, 0, len(feedback)),
		Bookings: make([]domain.BookingView, 0),
	}

	for _, item := range menu {
		view.Menu = append(view.Menu, item.View())
	}
	for _, t := range tables {
		view.Tables = append(view.Tables, t.View())
		for _, b := range t.Bookings {
			view.Bookings = append(view.Bookings, b.View(t.Num))
		}
	}
	for _, o := range orders {
		view.Orders = append(view.Orders, o.View())
	}
	for _, inc := range incomes {
		view.Incomes = append(view.Incomes, inc.Amount)
	}
	for _, fb := range feedback {
		view.Feedback = append(view.Feedback, fb.View())
	}
	return view, nil
}

func (s *RestaurantService) Delete(ctx context.Context, id int) error {
	rows, err := s.repo.DeleteRestaurant(id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurant: %w", err)
	}
	if rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (s *RestaurantService) AddMenuItem(ctx context.Context, restaurantID int, name string, price float64, img string) (*domain.MenuItemView, error) {
	if err := s.requireRestaurant(restaurantID); err != nil {
		return nil, err
	}
	item := &domain.MenuItem{
		RestaurantID: restaurantID,
		Name:         name,
		Price:        price,
		Img:          img,
	}
	if err := s.repo.CreateMenuItem(item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	view := item.View()
	return &view, nil
}

// UpsertTable updates the status of the table with the given number, or
// creates it when the (restaurant, num) pair is new.
func (s *RestaurantService) UpsertTable(ctx context.Context, restaurantID int, num, status string) (*domain.TableView, error) {
	if err := s.requireRestaurant(restaurantID); err != nil {
		return nil, err
	}
	if status == "" {
		status = defaultTableStatus
	}

	table, err := s.repo.GetTableByNum(restaurantID, num)
	if err != nil {
		return nil, fmt.Errorf("failed to look up table: %w", err)
	}
	if table != nil {
		if err := s.repo.UpdateTableStatus(table.ID, status); err != nil {
			return nil, fmt.Errorf("failed to update table: %w", err)
		}
		table.Status = status
	} else {
		table = &domain.Table{RestaurantID: restaurantID, Num: num, Status: status}
		if err := s.repo.CreateTable(table); err != nil {
			return nil, fmt.Errorf("failed to create table: %w", err)
		}
	}
	view := table.View()
	return &view, nil
}

func (s *RestaurantService) AddBooking(ctx context.Context, restaurantID int, input BookingInput) (*domain.BookingView, error) {
	if err := s.requireRestaurant(restaurantID); err != nil {
		return nil, err
	}
	table, err := s.repo.GetTableByNum(restaurantID, input.TableNum)
	if err != nil {
		return nil, fmt.Errorf("failed to look up table: %w", err)
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	booking := &domain.Booking{
		TableID:  table.ID,
		UserName: input.UserName,
		Start:    input.Start,
		End:      input.End,
	}
	if err := s.repo.CreateBooking(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	view := booking.View(table.Num)
	return &view, nil
}

func (s *RestaurantService) LogIncome(ctx context.Context, restaurantID int, amount float64) error {
	if err := s.requireRestaurant(restaurantID); err != nil {
		return err
	}
	income := &domain.Income{RestaurantID: restaurantID, Amount: amount}
	if err := s.repo.CreateIncome(income); err != nil {
		return fmt.Errorf("failed to log income: %w", err)
	}
	return nil
}

func (s *RestaurantService) AddFeedback(ctx context.Context, restaurantID int, input FeedbackInput) error {
	if err := s.requireRestaurant(restaurantID); err != nil {
		return err
	}
	userName := input.UserName
	if userName == "" {
		userName = anonymousFeedbackName
	}
	fb := &domain.Feedback{
		RestaurantID:  restaurantID,
		UserName:      userName,
		FoodRating:    input.FoodRating,
		ServiceRating: input.ServiceRating,
		Text:          input.Text,
	}
	if err := s.repo.CreateFeedback(fb); err != nil {
		return fmt.Errorf("failed to save feedback: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.PublishEvent(ctx, domain.Event{
			Type:         "feedback_received",
			RestaurantID: restaurantID,
			Timestamp:    time.Now(),
		})
	}
	return nil
}

func (s *RestaurantService) requireRestaurant(id int) error {
	rest, err := s.repo.GetRestaurant(id)
	if err != nil {
		return fmt.Errorf("failed to load restaurant: %w", err)
	}
	if rest == nil {
		return ErrRestaurantNotFound
	}
	return nil
}

var _ RestaurantServiceInterface = (*RestaurantService)(nil)
