package domain

// Store is a dark store fulfilling orders within a geographic zone.
type Store struct {
	ID             int64
	Name           string
	Zone           string
	AvgPickingTime float64
}

// Rider delivers orders for a zone. MaxCapacity is the maximum number
// of orders a rider can carry at once.
type Rider struct {
	ID          int64
	Name        string
	Zone        string
	MaxCapacity int
}

// Product is a catalog item grouped by department and aisle.
type Product struct {
	ID         int64
	Name       string
	Department string
	Aisle      string
	Price      float64
}
