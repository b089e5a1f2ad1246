package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"innstay/internal/utils"

	"github.com/jmoiron/sqlx"
)

var schema = []struct {
	table string
	ddl   string
}{
	{"users", `
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password_hash VARCHAR(255) NOT NULL,
	phone VARCHAR(50) NULL,
	role VARCHAR(20) NOT NULL DEFAULT 'user',
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uq_users_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"hotels", `
CREATE TABLE IF NOT EXISTS hotels (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	description TEXT NULL,
	city VARCHAR(120) NULL,
	state VARCHAR(120) NULL,
	country VARCHAR(120) NULL,
	price DECIMAL(10,2) NULL,
	rating DECIMAL(3,2) NULL,
	review_count INT NULL,
	image_url VARCHAR(512) NULL,
	images TEXT NULL,
	amenities TEXT NULL,
	bedrooms INT NULL,
	beds INT NULL,
	bathrooms INT NULL,
	max_guests INT NULL,
	status VARCHAR(32) NOT NULL DEFAULT 'Active',
	is_active TINYINT(1) NOT NULL DEFAULT 1,
	check_in_time VARCHAR(20) NULL,
	check_out_time VARCHAR(20) NULL,
	host_name VARCHAR(255) NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"bookings", `
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	hotel_id BIGINT NOT NULL,
	room_id BIGINT NULL,
	check_in DATE NOT NULL,
	check_out DATE NOT NULL,
	guests INT NOT NULL DEFAULT 1,
	total_price DECIMAL(10,2) NOT NULL DEFAULT 0,
	status VARCHAR(32) NOT NULL DEFAULT 'pending',
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_bookings_user (user_id),
	KEY idx_bookings_hotel (hotel_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"reviews", `
CREATE TABLE IF NOT EXISTS reviews (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NULL,
	hotel_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	rating INT NOT NULL,
	title VARCHAR(255) NULL,
	comment TEXT NULL,
	cleanliness INT NULL,
	service INT NULL,
	value INT NULL,
	is_verified TINYINT(1) NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	KEY idx_reviews_hotel (hotel_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// lateColumns were added after the first release; older databases get them
// through ALTER TABLE.
var lateColumns = []struct {
	table  string
	column string
	ddl    string
}{
	{"users", "is_active", "TINYINT(1) NOT NULL DEFAULT 1"},
	{"hotels", "status", "VARCHAR(32) NOT NULL DEFAULT 'Active'"},
	{"hotels", "is_active", "TINYINT(1) NOT NULL DEFAULT 1"},
	{"hotels", "check_in_time", "VARCHAR(20) NULL"},
	{"hotels", "check_out_time", "VARCHAR(20) NULL"},
	{"hotels", "host_name", "VARCHAR(255) NULL"},
	{"bookings", "room_id", "BIGINT NULL"},
}

// EnsureSchema creates missing tables and backfills late columns. Existing
// data is left untouched.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, s := range schema {
		if _, err := db.ExecContext(ctx, s.ddl); err != nil {
			return fmt.Errorf("ensure table %s: %w", s.table, err)
		}
	}
	for _, c := range lateColumns {
		ok, err := HasColumn(ctx, db, c.table, c.column)
		if err != nil {
			return fmt.Errorf("inspect %s.%s: %w", c.table, c.column, err)
		}
		if ok {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", c.table, c.column, c.ddl)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("add column %s.%s: %w", c.table, c.column, err)
		}
		utils.Log.Infow("schema column added", "table", c.table, "column", c.column)
	}
	return nil
}

// HasColumn reports whether table.column exists in the current database.
func HasColumn(ctx context.Context, db *sqlx.DB, table, column string) (bool, error) {
	var name string
	err := db.QueryRowxContext(ctx, `
		SELECT column_name
		FROM information_schema.columns
		WHERE table_schema = DATABASE()
		  AND table_name = ?
		  AND column_name = ?
		LIMIT 1`, table, column).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name != "", nil
}
