package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection: serializes writes and keeps :memory: databases on a
	// single underlying handle.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Categories are read-only through the API, so they get seeded here.
	if err := seedCategories(db); err != nil {
		return nil, err
	}
	// Ensure demo accounts exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Users. Emails are the join key across the whole store; is_seller_verified
-- stays nullable so an absent flag reads as false, same as the live data.
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL CHECK (role IN ('buyer','seller','admin')),
  is_seller_verified INTEGER,
  password_hash TEXT,
  profile_json TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Products. seller_email is intentionally NOT a foreign key; is_sold,
-- is_advertised and is_reported are nullable, and NULL means false.
CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  seller_email TEXT NOT NULL,
  seller_name TEXT,
  title TEXT NOT NULL,
  description TEXT,
  condition TEXT,
  original_price NUMERIC NOT NULL DEFAULT 0 CHECK (original_price >= 0),
  resale_price NUMERIC NOT NULL DEFAULT 0 CHECK (resale_price >= 0),
  location TEXT,
  image_url TEXT,
  years_of_use TEXT,
  is_sold INTEGER,
  is_advertised INTEGER,
  is_reported INTEGER,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_seller   ON products(seller_email);

-- Bookings
CREATE TABLE IF NOT EXISTS bookings(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  product_id TEXT,
  product_name TEXT,
  price NUMERIC NOT NULL DEFAULT 0,
  meeting_location TEXT,
  phone TEXT,
  paid INTEGER,
  transaction_id TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_bookings_email ON bookings(email);

-- Payments (append-only)
CREATE TABLE IF NOT EXISTS payments(
  id TEXT PRIMARY KEY,
  booking_id TEXT NOT NULL,
  email TEXT,
  price NUMERIC NOT NULL DEFAULT 0,
  transaction_id TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_payments_booking ON payments(booking_id);
`
	_, err := db.Exec(schema)
	return err
}

func seedCategories(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting product categories")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  ('laptops','Laptops'),
	  ('desktops','Desktop PCs'),
	  ('monitors','Monitors'),
	  ('components','Components & Parts')`)

	return tx.Commit()
}

// seedUsers ensures one account per role exists (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@bazar.test", "Admin", "admin", "Passw0rd!"),
		mk("u-selim", "selim@bazar.test", "Selim", "seller", "Passw0rd!"),
		mk("u-bithi", "bithi@bazar.test", "Bithi", "buyer", "Passw0rd!"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		if _, err := tx.Exec(`
			INSERT INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
			ON CONFLICT(email) DO NOTHING
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}
