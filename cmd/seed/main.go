// Command seed loads a starter catalog and rider pool into the database.
// It is idempotent: rows are upserted by primary key, so it can be re-run
// after schema changes or on a fresh environment.
package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), os.Getenv("DB_SSLMODE"))

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := seed(db); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Info("Seeding completed")
}

func seed(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	categories := []struct {
		id   int64
		name string
	}{
		{1, "Burgers"},
		{2, "Pizza"},
		{3, "Sushi"},
		{4, "Drinks"},
	}
	for _, c := range categories {
		_, err = tx.Exec(`
			INSERT INTO categories (category_id, name)
			VALUES ($1, $2)
			ON CONFLICT (category_id) DO UPDATE SET name = EXCLUDED.name`,
			c.id, c.name)
		if err != nil {
			return fmt.Errorf("seed category %d: %w", c.id, err)
		}
	}

	restaurants := []struct {
		id                      int64
		name, location, cuisine string
	}{
		{1, "Burger Barn", "12 Market Street", "american"},
		{2, "Napoli Express", "3 Harbour Road", "italian"},
		{3, "Tokyo Table", "88 Cherry Lane", "japanese"},
	}
	for _, r := range restaurants {
		_, err = tx.Exec(`
			INSERT INTO restaurants (restaurant_id, name, location, cuisine)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (restaurant_id) DO UPDATE
			SET name = EXCLUDED.name, location = EXCLUDED.location, cuisine = EXCLUDED.cuisine`,
			r.id, r.name, r.location, r.cuisine)
		if err != nil {
			return fmt.Errorf("seed restaurant %d: %w", r.id, err)
		}
	}

	menuItems := []struct {
		id, restaurantID, categoryID int64
		name                         string
		price                        string
	}{
		{1, 1, 1, "Classic Cheeseburger", "8.50"},
		{2, 1, 1, "Double Bacon Burger", "11.00"},
		{3, 1, 4, "Vanilla Shake", "4.25"},
		{4, 2, 2, "Margherita", "9.00"},
		{5, 2, 2, "Quattro Formaggi", "12.50"},
		{6, 2, 4, "Lemonade", "3.00"},
		{7, 3, 3, "Salmon Nigiri Set", "14.00"},
		{8, 3, 3, "California Roll", "10.50"},
	}
	for _, m := range menuItems {
		_, err = tx.Exec(`
			INSERT INTO menu_items (menu_item_id, restaurant_id, category_id, name, price, is_available)
			VALUES ($1, $2, $3, $4, $5, true)
			ON CONFLICT (menu_item_id) DO UPDATE
			SET restaurant_id = EXCLUDED.restaurant_id, category_id = EXCLUDED.category_id,
			    name = EXCLUDED.name, price = EXCLUDED.price`,
			m.id, m.restaurantID, m.categoryID, m.name, m.price)
		if err != nil {
			return fmt.Errorf("seed menu item %d: %w", m.id, err)
		}
	}

	riders := []struct {
		id                       int64
		name, phone, vehicleType string
	}{
		{1, "Alice Cooper", "555-0101", "bike"},
		{2, "Bruno Diaz", "555-0102", "scooter"},
		{3, "Clara Osei", "555-0103", "car"},
	}
	for _, r := range riders {
		_, err = tx.Exec(`
			INSERT INTO riders (rider_id, name, phone, vehicle_type, is_available)
			VALUES ($1, $2, $3, $4, true)
			ON CONFLICT (rider_id) DO UPDATE
			SET name = EXCLUDED.name, phone = EXCLUDED.phone, vehicle_type = EXCLUDED.vehicle_type`,
			r.id, r.name, r.phone, r.vehicleType)
		if err != nil {
			return fmt.Errorf("seed rider %d: %w", r.id, err)
		}
	}

	// Riders are also created through the API, so the serial sequence must
	// be moved past the seeded ids.
	_, err = tx.Exec(`
		SELECT setval(pg_get_serial_sequence('riders', 'rider_id'),
		              (SELECT COALESCE(MAX(rider_id), 1) FROM riders))`)
	if err != nil {
		return fmt.Errorf("advance rider sequence: %w", err)
	}

	return tx.Commit()
}
