package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	httpapi "rms-backend/internal/api/http"
	"rms-backend/internal/domain"
	"rms-backend/internal/mocks"
	"rms-backend/internal/service"
)

type handlerMocks struct {
	accounts    *mocks.AccountRepository
	restaurants *mocks.RestaurantRepository
	orders      *mocks.OrderRepository
	qr          *mocks.QRGenerator
}

// newTestRouter wires real services over repository mocks, same shape as main.
func newTestRouter() (*mux.Router, *handlerMocks) {
	m := &handlerMocks{
		accounts:    new(mocks.AccountRepository),
		restaurants: new(mocks.RestaurantRepository),
		orders:      new(mocks.OrderRepository),
		qr:          new(mocks.QRGenerator),
	}

	handler := httpapi.NewHandler(
		service.NewAccountService(m.accounts),
		service.NewRestaurantService(m.restaurants, m.orders, nil),
		service.NewOrderService(m.restaurants, m.orders, nil, nil, m.qr),
	)

	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r, m
}

func doJSON(r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name     string
		ping     func() error
		wantCode int
		wantDB   string
	}{
		{name: "database reachable", ping: func() error { return nil }, wantCode: http.StatusOK, wantDB: "connected"},
		{name: "database down", ping: func() error { return errors.New("down") }, wantCode: http.StatusInternalServerError, wantDB: "disconnected"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			handler := httpapi.NewHandler(nil, nil, nil)
			handler.Ping = testCase.ping
			r := mux.NewRouter()
			handler.RegisterRoutes(r)

			w := doJSON(r, "GET", "/api/health", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			assert.Equal(t, testCase.wantDB, decodeBody(t, w)["database"])
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
		wantError string
	}{
		{
			name: "successful registration",
			body: `{"type":"customer","name":"Alice","email":"alice@example.com","password":"secret"}`,
			setupMock: func(m *handlerMocks) {
				m.accounts.On("GetUserByEmail", "alice@example.com").Return(nil, nil).Once()
				m.accounts.On("CreateUser", mock.Anything, mock.Anything).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing fields",
			body:      `{"type":"customer","email":"alice@example.com"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
			wantError: "Missing fields",
		},
		{
			name:      "invalid account type",
			body:      `{"type":"admin","name":"Alice","email":"alice@example.com","password":"secret"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
			wantError: "Invalid account type",
		},
		{
			name: "duplicate email",
			body: `{"type":"customer","name":"Alice","email":"alice@example.com","password":"secret"}`,
			setupMock: func(m *handlerMocks) {
				m.accounts.On("GetUserByEmail", "alice@example.com").Return(&domain.User{ID: 1}, nil).Once()
			},
			wantCode:  http.StatusBadRequest,
			wantError: "Email already registered",
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/register", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantError != "" {
				assert.Equal(t, testCase.wantError, decodeBody(t, w)["error"])
			}
			m.accounts.AssertExpectations(t)
		})
	}
}

func TestLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	assert.NoError(t, err)

	restID := 7
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
	}{
		{
			name: "restaurant login returns restaurant id",
			body: `{"email":"cafe@example.com","password":"secret"}`,
			setupMock: func(m *handlerMocks) {
				m.accounts.On("GetUserByEmail", "cafe@example.com").Return(&domain.User{
					ID: 2, Name: "Cafe", Email: "cafe@example.com", PasswordHash: string(hash),
					Type: "restaurant", RestaurantID: &restID,
				}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "missing credentials",
			body:      `{"email":"cafe@example.com"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "unknown email",
			body: `{"email":"ghost@example.com","password":"secret"}`,
			setupMock: func(m *handlerMocks) {
				m.accounts.On("GetUserByEmail", "ghost@example.com").Return(nil, nil).Once()
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/login", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantCode == http.StatusOK {
				body := decodeBody(t, w)
				assert.Equal(t, "restaurant", body["type"])
				assert.Equal(t, float64(restID), body["restaurantId"])
			}
		})
	}
}

func TestListRestaurantsHandler(t *testing.T) {
	r, m := newTestRouter()

	m.restaurants.On("ListRestaurantSummaries").Return([]domain.RestaurantSummary{
		{Restaurant: domain.Restaurant{ID: 1, Name: "Spice & Flavor"}, MenuCount: 3, TableCount: 3},
	}, nil).Once()

	w := doJSON(r, "GET", "/api/restaurants", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	assert.Len(t, items, 1)
	assert.Equal(t, float64(3), items[0]["menuCount"])
	assert.Equal(t, domain.AvatarURL("Spice & Flavor"), items[0]["logo"])
}

func TestGetRestaurantHandler(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		setupMock func(*handlerMocks)
		wantCode  int
	}{
		{
			name: "not found",
			id:   "99",
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 99).Return(nil, nil).Once()
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:      "non-numeric id",
			id:        "abc",
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "GET", "/api/restaurants/"+testCase.id, "")

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteRestaurantHandler(t *testing.T) {
	r, m := newTestRouter()

	m.restaurants.On("DeleteRestaurant", 1).Return(int64(1), nil).Once()

	w := doJSON(r, "DELETE", "/api/restaurants/1", "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	m.restaurants.AssertExpectations(t)
}

func TestAddMenuItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
		wantError string
	}{
		{
			name: "item added",
			body: `{"name":"Biryani","price":280,"img":""}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
				m.restaurants.On("CreateMenuItem", mock.AnythingOfType("*domain.MenuItem")).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.MenuItem).ID = 10
					}).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "price as numeric string",
			body: `{"name":"Dosa","price":"120"}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
				m.restaurants.On("CreateMenuItem", mock.MatchedBy(func(item *domain.MenuItem) bool {
					return item.Price == 120
				})).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing price",
			body:      `{"name":"Biryani"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
			wantError: "Missing name or price",
		},
		{
			name:      "negative price",
			body:      `{"name":"Biryani","price":-5}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
			wantError: "Invalid price",
		},
		{
			name: "unknown restaurant",
			body: `{"name":"Biryani","price":280}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(nil, nil).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: "Restaurant not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/restaurants/1/menu", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantError != "" {
				assert.Equal(t, testCase.wantError, decodeBody(t, w)["error"])
			}
			m.restaurants.AssertExpectations(t)
		})
	}
}

func TestAddTableHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
	}{
		{
			name: "table created",
			body: `{"num":"4","status":"Occupied"}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
				m.restaurants.On("GetTableByNum", 1, "4").Return(nil, nil).Once()
				m.restaurants.On("CreateTable", mock.AnythingOfType("*domain.Table")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing table number",
			body:      `{"status":"Occupied"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/restaurants/1/tables", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			m.restaurants.AssertExpectations(t)
		})
	}
}

func TestAddBookingHandler_TableMissing(t *testing.T) {
	r, m := newTestRouter()

	m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
	m.restaurants.On("GetTableByNum", 1, "9").Return(nil, nil).Once()

	w := doJSON(r, "POST", "/api/restaurants/1/bookings", `{"tableNum":"9","userName":"Alice","start":"18:00","end":"19:00"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Table not found", decodeBody(t, w)["error"])
}

func TestAddIncomeHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
	}{
		{
			name: "income logged",
			body: `{"amount":1200.5}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
				m.restaurants.On("CreateIncome", mock.MatchedBy(func(income *domain.Income) bool {
					return income.Amount == 1200.5
				})).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "invalid amount",
			body:      `{"amount":"lots"}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/restaurants/1/income", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			m.restaurants.AssertExpectations(t)
		})
	}
}

func TestAddFeedbackHandler(t *testing.T) {
	r, m := newTestRouter()

	m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
	m.restaurants.On("CreateFeedback", mock.MatchedBy(func(fb *domain.Feedback) bool {
		return fb.UserName == "Anonymous" && fb.FoodRating == 5
	})).Return(nil).Once()

	w := doJSON(r, "POST", "/api/restaurants/1/feedback", `{"foodRating":5,"serviceRating":"4","text":"Tasty"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Feedback submitted", decodeBody(t, w)["message"])
	m.restaurants.AssertExpectations(t)
}

func TestCreateOrderHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(*handlerMocks)
		wantCode  int
		wantError string
	}{
		{
			name: "order placed",
			body: `{"items":[{"id":1,"qty":2}],"total":240}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(&domain.Restaurant{ID: 1, Name: "Cafe"}, nil).Once()
				m.orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "missing items",
			body:      `{"items":[]}`,
			setupMock: func(m *handlerMocks) {},
			wantCode:  http.StatusBadRequest,
			wantError: "Missing items",
		},
		{
			name: "unknown restaurant",
			body: `{"items":[{"id":1}]}`,
			setupMock: func(m *handlerMocks) {
				m.restaurants.On("GetRestaurant", 1).Return(nil, nil).Once()
			},
			wantCode:  http.StatusNotFound,
			wantError: "Restaurant not found",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "POST", "/api/restaurants/1/orders", testCase.body)

			assert.Equal(t, testCase.wantCode, w.Code)
			body := decodeBody(t, w)
			if testCase.wantError != "" {
				assert.Equal(t, testCase.wantError, body["error"])
			}
			if testCase.wantCode == http.StatusCreated {
				assert.Equal(t, "Order placed", body["message"])
				assert.Len(t, body["orderId"], 8)
			}
			m.orders.AssertExpectations(t)
		})
	}
}

func TestGetOrderQRCodeHandler(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*handlerMocks)
		wantCode  int
		wantType  string
	}{
		{
			name: "qr code rendered",
			setupMock: func(m *handlerMocks) {
				m.orders.On("GetOrder", 1, "ab12cd34").Return(&domain.Order{ID: "ab12cd34", RestaurantID: 1}, nil).Once()
				m.qr.On("Generate", "ab12cd34").Return([]byte("png"), nil).Once()
			},
			wantCode: http.StatusOK,
			wantType: "image/png",
		},
		{
			name: "order not found",
			setupMock: func(m *handlerMocks) {
				m.orders.On("GetOrder", 1, "ab12cd34").Return(nil, nil).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			r, m := newTestRouter()
			testCase.setupMock(m)

			w := doJSON(r, "GET", "/api/restaurants/1/orders/ab12cd34/qrcode", "")

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantType != "" {
				assert.Equal(t, testCase.wantType, w.Header().Get("Content-Type"))
			}
		})
	}
}
