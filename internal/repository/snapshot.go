package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/apperr"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// SnapshotRepo loads the full dataset from PostgreSQL. It is strictly
// read-only: analytics never mutates the source tables.
type SnapshotRepo struct{ db *pgxpool.Pool }

// NewSnapshotRepo creates a new SnapshotRepo.
func NewSnapshotRepo(db *pgxpool.Pool) *SnapshotRepo { return &SnapshotRepo{db: db} }

// Load reads the five entity collections. Any failure aborts the whole
// load: partial snapshots are never returned.
func (r *SnapshotRepo) Load(ctx context.Context) (*domain.Snapshot, error) {
	snap := &domain.Snapshot{}
	var err error

	if snap.Stores, err = r.loadStores(ctx); err != nil {
		return nil, unavailable("load stores", err)
	}
	if snap.Riders, err = r.loadRiders(ctx); err != nil {
		return nil, unavailable("load riders", err)
	}
	if snap.Products, err = r.loadProducts(ctx); err != nil {
		return nil, unavailable("load products", err)
	}
	if snap.Orders, err = r.loadOrders(ctx); err != nil {
		return nil, unavailable("load orders", err)
	}
	if snap.LineItems, err = r.loadLineItems(ctx); err != nil {
		return nil, unavailable("load line items", err)
	}
	return snap, nil
}

func unavailable(op string, err error) error {
	if IsUndefinedTable(err) {
		return fmt.Errorf("%s: dataset tables missing, run cmd/seeder first: %w", op, apperr.NotFound)
	}
	return fmt.Errorf("%s: %w", op, errors.Join(apperr.Unavailable, err))
}

func (r *SnapshotRepo) loadStores(ctx context.Context) ([]domain.Store, error) {
	rows, err := r.db.Query(ctx,
		`SELECT store_id, name, zone, avg_picking_time FROM stores ORDER BY store_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Store
	for rows.Next() {
		var s domain.Store
		if err := rows.Scan(&s.ID, &s.Name, &s.Zone, &s.AvgPickingTime); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadRiders(ctx context.Context) ([]domain.Rider, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rider_id, name, zone, max_capacity FROM riders ORDER BY rider_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Rider
	for rows.Next() {
		var rd domain.Rider
		if err := rows.Scan(&rd.ID, &rd.Name, &rd.Zone, &rd.MaxCapacity); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx,
		`SELECT product_id, product_name, department, aisle, price FROM products ORDER BY product_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Department, &p.Aisle, &p.Price); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.Query(ctx, `
		SELECT order_id, user_id, store_id, rider_id,
		       order_datetime, promised_delivery_time, actual_delivery_time,
		       status, cancellation_reason,
		       total_items, total_amount,
		       picking_time_minutes, delivery_time_minutes, delay_minutes
		FROM orders ORDER BY order_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.UserID, &o.StoreID, &o.RiderID,
			&o.PlacedAt, &o.PromisedAt, &o.DeliveredAt,
			&o.Status, &o.CancellationReason,
			&o.TotalItems, &o.TotalAmount,
			&o.PickingTimeMinutes, &o.DeliveryTimeMinutes, &o.DelayMinutes,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *SnapshotRepo) loadLineItems(ctx context.Context) ([]domain.OrderLineItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, product_id, quantity, was_out_of_stock
		FROM order_products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.OrderLineItem
	for rows.Next() {
		var li domain.OrderLineItem
		if err := rows.Scan(&li.ID, &li.OrderID, &li.ProductID, &li.Quantity, &li.WasOutOfStock); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}
