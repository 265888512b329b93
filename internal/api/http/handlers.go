package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rms-backend/internal/service"
)

type Handler struct {
	Accounts    service.AccountServiceInterface
	Restaurants service.RestaurantServiceInterface
	Orders      service.OrderServiceInterface

	// Ping reports store connectivity for the health endpoint; nil means
	// always healthy.
	Ping func() error
}

func NewHandler(accounts service.AccountServiceInterface, restaurants service.RestaurantServiceInterface, orders service.OrderServiceInterface) *Handler {
	return &Handler{Accounts: accounts, Restaurants: restaurants, Orders: orders}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/health", h.health).Methods("GET")
	r.HandleFunc("/api/register", h.register).Methods("POST")
	r.HandleFunc("/api/login", h.login).Methods("POST")

	r.HandleFunc("/api/restaurants", h.listRestaurants).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/api/restaurants/{id}/menu", h.addMenuItem).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/tables", h.addTable).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/bookings", h.addBooking).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/income", h.addIncome).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/feedback", h.addFeedback).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/restaurants/{id}/orders/{orderId}/qrcode", h.getOrderQRCode).Methods("GET")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// restaurantID pulls the {id} path variable; the second return is false when
// it is not a number (reported as 404, same as an unknown id).
func restaurantID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return 0, false
	}
	return id, true
}

// toFloat coerces a decoded JSON value to float64, accepting numbers and
// numeric strings. Anything else fails closed.
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

// toInt coerces a decoded JSON value to int, truncating fractions.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case nil:
		return 0, true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		return i, err == nil
	case json.Number:
		f, err := n.Float64()
		return int(f), err == nil
	}
	return 0, false
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if h.Ping != nil {
		if err := h.Ping(); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "error", "database": "disconnected"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "connected"})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Type     string `json:"type"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Type == "" || payload.Name == "" || payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if payload.Type != "customer" && payload.Type != "restaurant" {
		writeError(w, http.StatusBadRequest, "Invalid account type")
		return
	}

	err := h.Accounts.Register(r.Context(), service.RegisterInput{
		Type:     payload.Type,
		Name:     payload.Name,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful"})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		writeError(w, http.StatusBadRequest, "Missing credentials")
		return
	}

	resp, err := h.Accounts.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	items, err := h.Restaurants.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	view, err := h.Restaurants.FullView(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	if err := h.Restaurants.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Name  string      `json:"name"`
		Price interface{} `json:"price"`
		Img   string      `json:"img"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Name == "" || payload.Price == nil {
		writeError(w, http.StatusBadRequest, "Missing name or price")
		return
	}
	price, ok := toFloat(payload.Price)
	if !ok || price < 0 {
		writeError(w, http.StatusBadRequest, "Invalid price")
		return
	}

	item, err := h.Restaurants.AddMenuItem(r.Context(), id, payload.Name, price, payload.Img)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Menu item added", "item": item})
}

func (h *Handler) addTable(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Num    string `json:"num"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Num == "" {
		writeError(w, http.StatusBadRequest, "Missing table number")
		return
	}

	table, err := h.Restaurants.UpsertTable(r.Context(), id, payload.Num, payload.Status)
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Table updated", "table": table})
}

func (h *Handler) addBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		TableNum string `json:"tableNum"`
		UserName string `json:"userName"`
		Start    string `json:"start"`
		End      string `json:"end"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.TableNum == "" {
		writeError(w, http.StatusBadRequest, "Missing table number")
		return
	}

	booking, err := h.Restaurants.AddBooking(r.Context(), id, service.BookingInput{
		TableNum: payload.TableNum,
		UserName: payload.UserName,
		Start:    payload.Start,
		End:      payload.End,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRestaurantNotFound):
			writeError(w, http.StatusNotFound, "Restaurant not found")
		case errors.Is(err, service.ErrTableNotFound):
			writeError(w, http.StatusNotFound, "Table not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"message": "Booking created", "booking": booking})
}

func (h *Handler) addIncome(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		Amount interface{} `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	amount, ok := toFloat(payload.Amount)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	if err := h.Restaurants.LogIncome(r.Context(), id, amount); err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Income added"})
}

func (h *Handler) addFeedback(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		UserName      string      `json:"userName"`
		FoodRating    interface{} `json:"foodRating"`
		ServiceRating interface{} `json:"serviceRating"`
		Text          string      `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	foodRating, ok := toInt(payload.FoodRating)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid food rating")
		return
	}
	serviceRating, ok := toInt(payload.ServiceRating)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid service rating")
		return
	}

	err := h.Restaurants.AddFeedback(r.Context(), id, service.FeedbackInput{
		UserName:      payload.UserName,
		FoodRating:    foodRating,
		ServiceRating: serviceRating,
		Text:          payload.Text,
	})
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Feedback submitted"})
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	var payload struct {
		UserName string                   `json:"userName"`
		Items    []service.OrderLineInput `json:"items"`
		Method   string                   `json:"method"`
		Total    interface{}              `json:"total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if len(payload.Items) == 0 {
		writeError(w, http.StatusBadRequest, "Missing items")
		return
	}
	total := 0.0
	if payload.Total != nil {
		var ok bool
		if total, ok = toFloat(payload.Total); !ok {
			writeError(w, http.StatusBadRequest, "Invalid total")
			return
		}
	}

	orderID, err := h.Orders.Place(r.Context(), id, service.OrderInput{
		UserName: payload.UserName,
		Items:    payload.Items,
		Method:   payload.Method,
		Total:    total,
	})
	if err != nil {
		if errors.Is(err, service.ErrRestaurantNotFound) {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Order placed", "orderId": orderID})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(w, r)
	if !ok {
		return
	}
	orderID := mux.Vars(r)["orderId"]

	png, err := h.Orders.QRCode(r.Context(), id, orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
