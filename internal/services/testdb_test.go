package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	db.SetMaxOpenConns(1)
	schema := `
	CREATE TABLE categories(id TEXT PRIMARY KEY, name TEXT NOT NULL);
	CREATE TABLE users(id TEXT PRIMARY KEY, email TEXT NOT NULL UNIQUE, name TEXT NOT NULL DEFAULT '',
	  role TEXT NOT NULL, is_seller_verified INTEGER, password_hash TEXT, profile_json TEXT,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE products(id TEXT PRIMARY KEY, category_id TEXT NOT NULL, seller_email TEXT NOT NULL,
	  seller_name TEXT, title TEXT NOT NULL, description TEXT, condition TEXT,
	  original_price NUMERIC NOT NULL DEFAULT 0, resale_price NUMERIC NOT NULL DEFAULT 0,
	  location TEXT, image_url TEXT, years_of_use TEXT,
	  is_sold INTEGER, is_advertised INTEGER, is_reported INTEGER,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE bookings(id TEXT PRIMARY KEY, email TEXT NOT NULL, product_id TEXT, product_name TEXT,
	  price NUMERIC NOT NULL DEFAULT 0, meeting_location TEXT, phone TEXT,
	  paid INTEGER, transaction_id TEXT, created_at TEXT DEFAULT CURRENT_TIMESTAMP);
	CREATE TABLE payments(id TEXT PRIMARY KEY, booking_id TEXT NOT NULL, email TEXT,
	  price NUMERIC NOT NULL DEFAULT 0, transaction_id TEXT NOT NULL,
	  created_at TEXT DEFAULT CURRENT_TIMESTAMP);

	INSERT INTO categories(id,name) VALUES ('laptops','Laptops'), ('monitors','Monitors');
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatal(err)
	}
	return db
}
