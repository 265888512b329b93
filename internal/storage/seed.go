package storage

import "log"

// SeedDemo loads the demo restaurant on first start. It is idempotent:
// nothing happens when any restaurant already exists.
func (r *PostgresRepository) SeedDemo() error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		log.Println("Database already seeded")
		return nil
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var restaurantID int
	if err := tx.QueryRow(
		"INSERT INTO restaurants (name, logo) VALUES ($1, $2) RETURNING id",
		"Spice & Flavor",
		"https://ui-avatars.com/api/?name=Spice+Flavor&background=ff6b35&color=fff",
	).Scan(&restaurantID); err != nil {
		return err
	}

	menuItems := []struct {
		name       string
		price      float64
		img        string
		orderCount int
	}{
		{"Masala Dosa", 120, "https://via.placeholder.com/400x200?text=Masala+Dosa", 45},
		{"Paneer Butter Masala", 240, "https://via.placeholder.com/400x200?text=Paneer+Butter+Masala", 32},
		{"Biryani", 280, "https://via.placeholder.com/400x200?text=Biryani", 67},
	}
	for _, item := range menuItems {
		if _, err := tx.Exec(
			"INSERT INTO menu_items (restaurant_id, name, price, img, order_count) VALUES ($1, $2, $3, $4, $5)",
			restaurantID, item.name, item.price, item.img, item.orderCount,
		); err != nil {
			return err
		}
	}

	tables := []struct {
		num    string
		status string
	}{
		{"1", "Available"},
		{"2", "Available"},
		{"3", "Occupied"},
	}
	for _, t := range tables {
		if _, err := tx.Exec(
			"INSERT INTO tables (restaurant_id, num, status) VALUES ($1, $2, $3)",
			restaurantID, t.num, t.status,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	log.Println("Database initialized with demo data")
	return nil
}
