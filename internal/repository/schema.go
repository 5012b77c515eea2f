package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schemaStatements = []struct {
	name string
	ddl  string
}{
	{"stores", `
		CREATE TABLE IF NOT EXISTS stores (
			store_id         BIGSERIAL PRIMARY KEY,
			name             TEXT NOT NULL,
			zone             TEXT NOT NULL,
			avg_picking_time DOUBLE PRECISION NOT NULL DEFAULT 0
		);
	`},
	{"products", `
		CREATE TABLE IF NOT EXISTS products (
			product_id   BIGSERIAL PRIMARY KEY,
			product_name TEXT NOT NULL,
			department   TEXT NOT NULL,
			aisle        TEXT NOT NULL,
			price        DOUBLE PRECISION NOT NULL DEFAULT 0
		);
	`},
	{"riders", `
		CREATE TABLE IF NOT EXISTS riders (
			rider_id     BIGSERIAL PRIMARY KEY,
			name         TEXT NOT NULL,
			zone         TEXT NOT NULL,
			max_capacity INTEGER NOT NULL DEFAULT 0
		);
	`},
	{"orders", `
		CREATE TABLE IF NOT EXISTS orders (
			order_id               BIGSERIAL PRIMARY KEY,
			user_id                BIGINT NOT NULL,
			store_id               BIGINT NOT NULL REFERENCES stores(store_id),
			rider_id               BIGINT NOT NULL REFERENCES riders(rider_id),
			order_datetime         TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			promised_delivery_time TIMESTAMP WITHOUT TIME ZONE NOT NULL,
			actual_delivery_time   TIMESTAMP WITHOUT TIME ZONE,
			status                 TEXT NOT NULL,
			cancellation_reason    TEXT,
			total_items            INTEGER NOT NULL DEFAULT 0,
			total_amount           DOUBLE PRECISION NOT NULL DEFAULT 0,
			picking_time_minutes   DOUBLE PRECISION NOT NULL DEFAULT 0,
			delivery_time_minutes  DOUBLE PRECISION,
			delay_minutes          DOUBLE PRECISION
		);
	`},
	{"order_products", `
		CREATE TABLE IF NOT EXISTS order_products (
			id               BIGSERIAL PRIMARY KEY,
			order_id         BIGINT NOT NULL REFERENCES orders(order_id) ON DELETE CASCADE,
			product_id       BIGINT NOT NULL REFERENCES products(product_id),
			quantity         INTEGER NOT NULL DEFAULT 1,
			was_out_of_stock BOOLEAN NOT NULL DEFAULT FALSE
		);
	`},
}

// InitSchema creates the dataset tables if they do not exist.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, st := range schemaStatements {
		if _, err := db.Exec(ctx, st.ddl); err != nil {
			return fmt.Errorf("create %s table: %w", st.name, err)
		}
	}
	return nil
}
