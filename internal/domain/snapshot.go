package domain

// Snapshot is a read-only view of the full dataset at load time. The
// analytics core never mutates it; two computations over the same
// snapshot yield identical results.
type Snapshot struct {
	Orders    []Order
	Stores    []Store
	Riders    []Rider
	Products  []Product
	LineItems []OrderLineItem
}

// StoresByID returns an id lookup for stores.
func (s *Snapshot) StoresByID() map[int64]Store {
	m := make(map[int64]Store, len(s.Stores))
	for _, st := range s.Stores {
		m[st.ID] = st
	}
	return m
}

// RidersByID returns an id lookup for riders.
func (s *Snapshot) RidersByID() map[int64]Rider {
	m := make(map[int64]Rider, len(s.Riders))
	for _, r := range s.Riders {
		m[r.ID] = r
	}
	return m
}

// ProductsByID returns an id lookup for products.
func (s *Snapshot) ProductsByID() map[int64]Product {
	m := make(map[int64]Product, len(s.Products))
	for _, p := range s.Products {
		m[p.ID] = p
	}
	return m
}

// OrdersByID returns an id lookup for orders.
func (s *Snapshot) OrdersByID() map[int64]Order {
	m := make(map[int64]Order, len(s.Orders))
	for _, o := range s.Orders {
		m[o.ID] = o
	}
	return m
}
