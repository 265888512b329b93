package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"rms-backend/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Ping() error {
	return r.DB.Ping()
}

// EnsureSchema creates every table the service needs. Referential integrity
// lives in the foreign keys; cascade deletion is an explicit operation on
// DeleteRestaurant, not a schema annotation.
func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			logo TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			type TEXT NOT NULL,
			restaurant_id INTEGER REFERENCES restaurants(id)
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			price DOUBLE PRECISION NOT NULL,
			img TEXT,
			order_count INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			num TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'Available',
			UNIQUE (restaurant_id, num)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			table_id INTEGER NOT NULL REFERENCES tables(id),
			user_name TEXT,
			start_at TEXT,
			end_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS incomes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			amount DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			user_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			food_rating INTEGER NOT NULL DEFAULT 0,
			service_rating INTEGER NOT NULL DEFAULT 0,
			comment TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			user_name TEXT,
			items_json TEXT,
			total DOUBLE PRECISION,
			method TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// Users

func (r *PostgresRepository) GetUserByEmail(email string) (*domain.User, error) {
	var user domain.User
	var restaurantID sql.NullInt64
	err := r.DB.QueryRow(`
		SELECT id, name, email, password_hash, type, restaurant_id
		FROM users
		WHERE email = $1`, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Type, &restaurantID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if restaurantID.Valid {
		id := int(restaurantID.Int64)
		user.RestaurantID = &id
	}
	return &user, nil
}

func (r *PostgresRepository) CreateUser(user *domain.User, restaurant *domain.Restaurant) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if restaurant != nil {
		if err := tx.QueryRow(
			"INSERT INTO restaurants (name, logo) VALUES ($1, NULLIF($2, '')) RETURNING id",
			restaurant.Name, restaurant.Logo,
		).Scan(&restaurant.ID); err != nil {
			return err
		}
		user.RestaurantID = &restaurant.ID
	}

	var restaurantID sql.NullInt64
	if user.RestaurantID != nil {
		restaurantID = sql.NullInt64{Int64: int64(*user.RestaurantID), Valid: true}
	}

	err = tx.QueryRow(`
		INSERT INTO users (name, email, password_hash, type, restaurant_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		user.Name, user.Email, user.PasswordHash, user.Type, restaurantID).
		Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return err
	}

	return tx.Commit()
}

// Restaurants

func (r *PostgresRepository) ListRestaurantSummaries() ([]domain.RestaurantSummary, error) {
	rows, err := r.DB.Query(`
		SELECT r.id, r.name, COALESCE(r.logo, ''),
			(SELECT COUNT(*) FROM menu_items m WHERE m.restaurant_id = r.id),
			(SELECT COUNT(*) FROM tables t WHERE t.restaurant_id = r.id)
		FROM restaurants r
		ORDER BY r.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.RestaurantSummary
	for rows.Next() {
		var s domain.RestaurantSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Logo, &s.MenuCount, &s.TableCount); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(id int) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(logo, '')
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Logo)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// DeleteRestaurant removes the restaurant and all seven owned child
// collections in one transaction. Users pointing at it are unlinked, not
// deleted. Returns the number of restaurant rows removed.
func (r *PostgresRepository) DeleteRestaurant(id int) (int64, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	children := []string{
		"DELETE FROM bookings WHERE table_id IN (SELECT id FROM tables WHERE restaurant_id = $1)",
		"DELETE FROM tables WHERE restaurant_id = $1",
		"DELETE FROM menu_items WHERE restaurant_id = $1",
		"DELETE FROM orders WHERE restaurant_id = $1",
		"DELETE FROM incomes WHERE restaurant_id = $1",
		"DELETE FROM feedback WHERE restaurant_id = $1",
		"UPDATE users SET restaurant_id = NULL WHERE restaurant_id = $1",
	}
	for _, stmt := range children {
		if _, err := tx.Exec(stmt, id); err != nil {
			return 0, err
		}
	}

	result, err := tx.Exec("DELETE FROM restaurants WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return rows, nil
}

// Menu items

func (r *PostgresRepository) ListMenuItems(restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, name, price, COALESCE(img, ''), order_count
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Img, &item.OrderCount); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) CreateMenuItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, name, price, img)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id`,
		item.RestaurantID, item.Name, item.Price, item.Img).
		Scan(&item.ID)
}

// Tables and bookings

// ListTablesWithBookings loads a restaurant's tables in stored order with
// each table's bookings attached, also in stored order.
func (r *PostgresRepository) ListTablesWithBookings(restaurantID int) ([]domain.Table, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, num, status
		FROM tables
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []domain.Table
	index := make(map[int]int)
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.RestaurantID, &t.Num, &t.Status); err != nil {
			return nil, err
		}
		index[t.ID] = len(tables)
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(tables) == 0 {
		return tables, nil
	}

	bookingRows, err := r.DB.Query(`
		SELECT b.id, b.table_id, COALESCE(b.user_name, ''), COALESCE(b.start_at, ''), COALESCE(b.end_at, '')
		FROM bookings b
		JOIN tables t ON b.table_id = t.id
		WHERE t.restaurant_id = $1
		ORDER BY b.table_id, b.id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer bookingRows.Close()

	for bookingRows.Next() {
		var b domain.Booking
		if err := bookingRows.Scan(&b.ID, &b.TableID, &b.UserName, &b.Start, &b.End); err != nil {
			return nil, err
		}
		if i, ok := index[b.TableID]; ok {
			tables[i].Bookings = append(tables[i].Bookings, b)
		}
	}
	return tables, bookingRows.Err()
}

func (r *PostgresRepository) GetTableByNum(restaurantID int, num string) (*domain.Table, error) {
	var t domain.Table
	err := r.DB.QueryRow(`
		SELECT id, restaurant_id, num, status
		FROM tables
		WHERE restaurant_id = $1 AND num = $2`, restaurantID, num).
		Scan(&t.ID, &t.RestaurantID, &t.Num, &t.Status)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepository) CreateTable(table *domain.Table) error {
	return r.DB.QueryRow(`
		INSERT INTO tables (restaurant_id, num, status)
		VALUES ($1, $2, $3)
		RETURNING id`,
		table.RestaurantID, table.Num, table.Status).
		Scan(&table.ID)
}

func (r *PostgresRepository) UpdateTableStatus(id int, status string) error {
	_, err := r.DB.Exec("UPDATE tables SET status = $1 WHERE id = $2", status, id)
	return err
}

func (r *PostgresRepository) CreateBooking(booking *domain.Booking) error {
	return r.DB.QueryRow(`
		INSERT INTO bookings (table_id, user_name, start_at, end_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		booking.TableID, booking.UserName, booking.Start, booking.End).
		Scan(&booking.ID)
}

// Incomes

func (r *PostgresRepository) ListIncomes(restaurantID int) ([]domain.Income, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, amount, created_at
		FROM incomes
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []domain.Income
	for rows.Next() {
		var inc domain.Income
		if err := rows.Scan(&inc.ID, &inc.RestaurantID, &inc.Amount, &inc.CreatedAt); err != nil {
			return nil, err
		}
		incomes = append(incomes, inc)
	}
	return incomes, rows.Err()
}

func (r *PostgresRepository) CreateIncome(income *domain.Income) error {
	return r.DB.QueryRow(`
		INSERT INTO incomes (restaurant_id, amount)
		VALUES ($1, $2)
		RETURNING id, created_at`,
		income.RestaurantID, income.Amount).
		Scan(&income.ID, &income.CreatedAt)
}

// Feedback

func (r *PostgresRepository) ListFeedback(restaurantID int) ([]domain.Feedback, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, COALESCE(user_name, ''), created_at, food_rating, service_rating, COALESCE(comment, '')
		FROM feedback
		WHERE restaurant_id = $1
		ORDER BY id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Feedback
	for rows.Next() {
		var fb domain.Feedback
		if err := rows.Scan(&fb.ID, &fb.RestaurantID, &fb.UserName, &fb.CreatedAt, &fb.FoodRating, &fb.ServiceRating, &fb.Text); err != nil {
			return nil, err
		}
		entries = append(entries, fb)
	}
	return entries, rows.Err()
}

func (r *PostgresRepository) CreateFeedback(fb *domain.Feedback) error {
	return r.DB.QueryRow(`
		INSERT INTO feedback (restaurant_id, user_name, food_rating, service_rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		fb.RestaurantID, fb.UserName, fb.FoodRating, fb.ServiceRating, fb.Text).
		Scan(&fb.ID, &fb.CreatedAt)
}

// Orders

func (r *PostgresRepository) ListOrders(restaurantID int) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, COALESCE(user_name, ''), COALESCE(items_json, ''), COALESCE(total, 0), COALESCE(method, ''), created_at
		FROM orders
		WHERE restaurant_id = $1
		ORDER BY created_at, id`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

func (r *PostgresRepository) GetOrder(restaurantID int, orderID string) (*domain.Order, error) {
	row := r.DB.QueryRow(`
		SELECT id, restaurant_id, COALESCE(user_name, ''), COALESCE(items_json, ''), COALESCE(total, 0), COALESCE(method, ''), created_at
		FROM orders
		WHERE restaurant_id = $1 AND id = $2`, restaurantID, orderID)

	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var itemsJSON string
	if err := row.Scan(&order.ID, &order.RestaurantID, &order.UserName, &itemsJSON, &order.Total, &order.Method, &order.CreatedAt); err != nil {
		return nil, err
	}
	if itemsJSON != "" {
		if err := json.Unmarshal([]byte(itemsJSON), &order.Lines); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	return &order, nil
}

// CreateOrder inserts the order and increments order_count on each referenced
// menu item, scoped to the order's restaurant, in one transaction. Lines that
// don't match a menu item update zero rows and are effectively skipped.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	itemsJSON, err := json.Marshal(order.Lines)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO orders (id, restaurant_id, user_name, items_json, total, method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		order.ID, order.RestaurantID, order.UserName, string(itemsJSON), order.Total, order.Method).
		Scan(&order.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateOrderID
		}
		return err
	}

	for _, line := range order.Lines {
		if line.ID <= 0 {
			continue
		}
		if _, err := tx.Exec(`
			UPDATE menu_items
			SET order_count = order_count + $1
			WHERE id = $2 AND restaurant_id = $3`,
			line.Qty, line.ID, order.RestaurantID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
