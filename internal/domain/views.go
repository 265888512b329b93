package domain

import (
	"strconv"
	"strings"
	"time"
)

const (
	avatarURLPrefix = "https://ui-avatars.com/api/?name="
	avatarURLSuffix = "&&background=101827&color=fff"

	placeholderDishImg = "https://via.placeholder.com/400x200?text=Dish"
)

// AvatarURL builds the fallback logo for a restaurant without one. Spaces
// in the name become '+' so the avatar service renders one initial per word.
func AvatarURL(name string) string {
	return avatarURLPrefix + strings.ReplaceAll(name, " ", "+") + avatarURLSuffix
}

type RestaurantListItem struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Logo       string `json:"logo"`
	MenuCount  int    `json:"menuCount"`
	TableCount int    `json:"tableCount"`
}

func (s RestaurantSummary) ListItem() RestaurantListItem {
	logo := s.Logo
	if logo == "" {
		logo = AvatarURL(s.Name)
	}
	return RestaurantListItem{
		ID:         s.ID,
		Name:       s.Name,
		Logo:       logo,
		MenuCount:  s.MenuCount,
		TableCount: s.TableCount,
	}
}

type MenuItemView struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Img        string  `json:"img"`
	OrderCount int     `json:"orderCount"`
}

func (m MenuItem) View() MenuItemView {
	img := m.Img
	if img == "" {
		img = placeholderDishImg
	}
	return MenuItemView{ID: m.ID, Name: m.Name, Price: m.Price, Img: img, OrderCount: m.OrderCount}
}

type TableView struct {
	ID     int    `json:"id"`
	Num    string `json:"num"`
	Status string `json:"status"`
}

func (t Table) View() TableView {
	return TableView{ID: t.ID, Num: t.Num, Status: t.Status}
}

type BookingView struct {
	ID       int    `json:"id"`
	TableNum string `json:"tableNum"`
	UserName string `json:"userName"`
	Start    string `json:"start"`
	End      string `json:"end"`
}

// View renders a booking with its owning table's number. When the table is
// not loaded the raw table id stands in.
func (b Booking) View(tableNum string) BookingView {
	if tableNum == "" {
		tableNum = strconv.Itoa(b.TableID)
	}
	return BookingView{ID: b.ID, TableNum: tableNum, UserName: b.UserName, Start: b.Start, End: b.End}
}

type FeedbackView struct {
	ID            int    `json:"id"`
	UserName      string `json:"userName"`
	When          string `json:"when"`
	FoodRating    int    `json:"foodRating"`
	ServiceRating int    `json:"serviceRating"`
	Text          string `json:"text"`
}

func (f Feedback) View() FeedbackView {
	return FeedbackView{
		ID:            f.ID,
		UserName:      f.UserName,
		When:          f.CreatedAt.UTC().Format(time.RFC3339),
		FoodRating:    f.FoodRating,
		ServiceRating: f.ServiceRating,
		Text:          f.Text,
	}
}

type OrderView struct {
	ID       string      `json:"id"`
	UserName string      `json:"userName"`
	Items    []OrderLine `json:"items"`
	Total    float64     `json:"total"`
	Method   string      `json:"method"`
	When     string      `json:"when"`
}

func (o Order) View() OrderView {
	items := o.Lines
	if items == nil {
		items = []OrderLine{}
	}
	return OrderView{
		ID:       o.ID,
		UserName: o.UserName,
		Items:    items,
		Total:    o.Total,
		Method:   o.Method,
		When:     o.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// RestaurantFullView is the aggregated detail payload: the restaurant's own
// fields plus every owned collection, with bookings flattened across tables.
type RestaurantFullView struct {
	ID       int                `json:"id"`
	Name     string             `json:"name"`
	Logo     string             `json:"logo"`
	Menu     []MenuItemView     `json:"menu"`
	Tables   []TableView        `json:"tables"`
	Orders   []OrderView        `json:"orders"`
	Incomes  []float64          `json:"incomes"`
	Feedback []FeedbackView     `json:"feedback"`
	Bookings []BookingView      `json:"bookings"`
}

type LoginResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Type         string `json:"type"`
	RestaurantID *int   `json:"restaurantId,omitempty"`
}
