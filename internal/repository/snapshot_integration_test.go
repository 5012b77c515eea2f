//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/domain"
	"github.com/aasthha0421/Commerce-Operations-Analytics/internal/repository"
)

type SnapshotRepositorySuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	repo  *repository.SnapshotRepo
	seeds *repository.SeedRepo
}

func (s *SnapshotRepositorySuite) SetupSuite() {
	s.Require().NotNil(tcPool, "tcPool must be initialized in TestMain")

	s.pool = tcPool
	s.repo = repository.NewSnapshotRepo(tcPool)
	s.seeds = repository.NewSeedRepo(tcPool)
}

func (s *SnapshotRepositorySuite) SetupTest() {
	s.Require().NoError(s.seeds.Reset(context.Background()))
}

func (s *SnapshotRepositorySuite) TestLoad_EmptyDataset() {
	snap, err := s.repo.Load(context.Background())
	s.Require().NoError(err)
	s.Require().NotNil(snap)

	s.Empty(snap.Orders)
	s.Empty(snap.Stores)
	s.Empty(snap.Riders)
	s.Empty(snap.Products)
	s.Empty(snap.LineItems)
}

func (s *SnapshotRepositorySuite) TestInsertAndLoad_RoundTrip() {
	ctx := context.Background()

	placed := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	promised := placed.Add(30 * time.Minute)
	delivered := promised.Add(7 * time.Minute)
	delay := 7.0
	deliveryTime := 37.0
	reason := "Out of stock"

	in := &domain.Snapshot{
		Stores:   []domain.Store{{ID: 1, Name: "QuickMart Central", Zone: "Central", AvgPickingTime: 9.5}},
		Riders:   []domain.Rider{{ID: 1, Name: "Asha", Zone: "Central", MaxCapacity: 4}},
		Products: []domain.Product{{ID: 1, Name: "Milk", Department: "Dairy", Aisle: "Aisle 3", Price: 2.49}},
		Orders: []domain.Order{
			{
				ID: 1, UserID: 11, StoreID: 1, RiderID: 1,
				PlacedAt: placed, PromisedAt: promised, DeliveredAt: &delivered,
				Status:             domain.StatusDelivered,
				TotalItems:         2, TotalAmount: 4.98,
				PickingTimeMinutes: 6.5, DeliveryTimeMinutes: &deliveryTime, DelayMinutes: &delay,
			},
			{
				ID: 2, UserID: 12, StoreID: 1, RiderID: 1,
				PlacedAt: placed, PromisedAt: promised,
				Status:             domain.StatusCancelled,
				CancellationReason: &reason,
				TotalItems:         1, TotalAmount: 2.49,
				PickingTimeMinutes: 3,
			},
		},
		LineItems: []domain.OrderLineItem{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2, WasOutOfStock: false},
			{ID: 2, OrderID: 2, ProductID: 1, Quantity: 1, WasOutOfStock: true},
		},
	}

	s.Require().NoError(s.seeds.InsertSnapshot(ctx, in))

	got, err := s.repo.Load(ctx)
	s.Require().NoError(err)

	s.Require().Len(got.Orders, 2)
	s.Require().Len(got.LineItems, 2)

	first := got.Orders[0]
	s.Equal(domain.StatusDelivered, first.Status)
	s.Require().NotNil(first.DelayMinutes)
	s.Equal(delay, *first.DelayMinutes)
	s.Require().NotNil(first.DeliveredAt)
	s.Nil(first.CancellationReason)

	second := got.Orders[1]
	s.Equal(domain.StatusCancelled, second.Status)
	s.Require().NotNil(second.CancellationReason)
	s.Equal(reason, *second.CancellationReason)
	s.Nil(second.DelayMinutes)

	s.True(got.LineItems[1].WasOutOfStock)
}

func (s *SnapshotRepositorySuite) TestLoad_FailsAsAWhole() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	snap, err := s.repo.Load(ctx)
	s.Require().Error(err)
	s.Nil(snap, "a failed load must not return a partial snapshot")
}

func TestSnapshotRepositorySuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositorySuite))
}
