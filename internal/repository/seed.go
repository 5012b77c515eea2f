package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
)

// SeedRepo writes a generated dataset into PostgreSQL. It belongs to
// the ingestion side of the system; the analytics core only ever reads.
type SeedRepo struct{ db *pgxpool.Pool }

// NewSeedRepo creates a new SeedRepo.
func NewSeedRepo(db *pgxpool.Pool) *SeedRepo { return &SeedRepo{db: db} }

// Reset clears all dataset tables.
func (r *SeedRepo) Reset(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`TRUNCATE order_products, orders, riders, products, stores RESTART IDENTITY CASCADE`)
	if err != nil {
		return fmt.Errorf("truncate dataset: %w", err)
	}
	return nil
}

// InsertSnapshot bulk-loads a full dataset via COPY, parents first.
func (r *SeedRepo) InsertSnapshot(ctx context.Context, snap *domain.Snapshot) error {
	if err := r.insertStores(ctx, snap.Stores); err != nil {
		return err
	}
	if err := r.insertProducts(ctx, snap.Products); err != nil {
		return err
	}
	if err := r.insertRiders(ctx, snap.Riders); err != nil {
		return err
	}
	if err := r.insertOrders(ctx, snap.Orders); err != nil {
		return err
	}
	return r.insertLineItems(ctx, snap.LineItems)
}

// copyErr wraps a COPY failure, calling out duplicate ids: they mean
// the tables were not truncated before loading.
func copyErr(table string, err error) error {
	if err == nil {
		return nil
	}
	if IsDuplicate(err) {
		return fmt.Errorf("copy %s: duplicate ids, reset the dataset first: %w", table, err)
	}
	return fmt.Errorf("copy %s: %w", table, err)
}

func (r *SeedRepo) insertStores(ctx context.Context, stores []domain.Store) error {
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"stores"},
		[]string{"store_id", "name", "zone", "avg_picking_time"},
		pgx.CopyFromSlice(len(stores), func(i int) ([]any, error) {
			s := stores[i]
			return []any{s.ID, s.Name, s.Zone, s.AvgPickingTime}, nil
		}),
	)
	return copyErr("stores", err)
}

func (r *SeedRepo) insertProducts(ctx context.Context, products []domain.Product) error {
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"products"},
		[]string{"product_id", "product_name", "department", "aisle", "price"},
		pgx.CopyFromSlice(len(products), func(i int) ([]any, error) {
			p := products[i]
			return []any{p.ID, p.Name, p.Department, p.Aisle, p.Price}, nil
		}),
	)
	return copyErr("products", err)
}

func (r *SeedRepo) insertRiders(ctx context.Context, riders []domain.Rider) error {
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"riders"},
		[]string{"rider_id", "name", "zone", "max_capacity"},
		pgx.CopyFromSlice(len(riders), func(i int) ([]any, error) {
			rd := riders[i]
			return []any{rd.ID, rd.Name, rd.Zone, rd.MaxCapacity}, nil
		}),
	)
	return copyErr("riders", err)
}

func (r *SeedRepo) insertOrders(ctx context.Context, orders []domain.Order) error {
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"orders"},
		[]string{
			"order_id", "user_id", "store_id", "rider_id",
			"order_datetime", "promised_delivery_time", "actual_delivery_time",
			"status", "cancellation_reason",
			"total_items", "total_amount",
			"picking_time_minutes", "delivery_time_minutes", "delay_minutes",
		},
		pgx.CopyFromSlice(len(orders), func(i int) ([]any, error) {
			o := orders[i]
			return []any{
				o.ID, o.UserID, o.StoreID, o.RiderID,
				o.PlacedAt, o.PromisedAt, o.DeliveredAt,
				string(o.Status), o.CancellationReason,
				o.TotalItems, o.TotalAmount,
				o.PickingTimeMinutes, o.DeliveryTimeMinutes, o.DelayMinutes,
			}, nil
		}),
	)
	return copyErr("orders", err)
}

func (r *SeedRepo) insertLineItems(ctx context.Context, items []domain.OrderLineItem) error {
	_, err := r.db.CopyFrom(ctx,
		pgx.Identifier{"order_products"},
		[]string{"id", "order_id", "product_id", "quantity", "was_out_of_stock"},
		pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
			li := items[i]
			return []any{li.ID, li.OrderID, li.ProductID, li.Quantity, li.WasOutOfStock}, nil
		}),
	)
	return copyErr("order_products", err)
}
