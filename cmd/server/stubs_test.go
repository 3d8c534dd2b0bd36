package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpatel-dev/ecom-backoffice/internal/customer"
	"github.com/rpatel-dev/ecom-backoffice/internal/order"
	"github.com/rpatel-dev/ecom-backoffice/internal/product"
	"github.com/rpatel-dev/ecom-backoffice/internal/stats"
)

//
// ---------- STUBS & FAKES ----------
//

// stubProductRepo implements product.Repository in memory.
type stubProductRepo struct {
	mu    sync.Mutex
	items map[int64]*product.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{items: make(map[int64]*product.Product)}
}

func (s *stubProductRepo) put(p product.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.items[p.ID] = &p
}

func (s *stubProductRepo) ListInStock(ctx context.Context) ([]product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []product.Product
	for _, p := range s.items {
		if p.Stock > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubProductRepo) ListByCategory(ctx context.Context, category string) ([]product.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []product.Product
	for _, p := range s.items {
		if p.Category == category && p.Stock > 0 {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Categories(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	var out []string
	for _, p := range s.items {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out, nil
}

func (s *stubProductRepo) Create(ctx context.Context, p *product.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = int64(len(s.items) + 1)
	p.CreatedAt = time.Now().UTC()
	cp := *p
	s.items[p.ID] = &cp
	return nil
}

func (s *stubProductRepo) Update(ctx context.Context, p *product.Product, stock *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[p.ID]
	if !ok {
		return nil // matches SQL UPDATE on a missing row
	}
	if p.Name != "" {
		cur.Name = p.Name
	}
	if p.Category != "" {
		cur.Category = p.Category
	}
	if p.Price != "" {
		cur.Price = p.Price
	}
	if stock != nil {
		cur.Stock = *stock
	}
	if p.Description != "" {
		cur.Description = p.Description
	}
	return nil
}

func (s *stubProductRepo) Delete(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)
	return true, nil
}

// stubOrderRepo implements order.Repository in memory with the same
// all-or-nothing placement semantics as the SQL transaction.
type stubOrderRepo struct {
	mu         sync.Mutex
	products   map[int64]*stubProduct
	orders     map[int64]*order.Order
	items      map[int64][]order.Item
	nextID     int64
	placeCalls int
}

type stubProduct struct {
	name  string
	price decimal.Decimal
	stock int
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{
		products: make(map[int64]*stubProduct),
		orders:   make(map[int64]*order.Order),
		items:    make(map[int64][]order.Item),
	}
}

func (s *stubOrderRepo) putProduct(id int64, name, price string, stock int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[id] = &stubProduct{name: name, price: decimal.RequireFromString(price), stock: stock}
}

func (s *stubOrderRepo) stock(id int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].stock
}

func (s *stubOrderRepo) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func (s *stubOrderRepo) Place(ctx context.Context, customerID int64, lines []order.Line) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.placeCalls++

	// Sequential check-then-decrement with rollback on failure,
	// mirroring the row-locked transaction.
	var applied []order.Line
	rollback := func() {
		for _, a := range applied {
			s.products[a.ProductID].stock += a.Quantity
		}
	}

	total := decimal.Zero
	var items []order.Item
	for i, ln := range lines {
		p, ok := s.products[ln.ProductID]
		if !ok {
			rollback()
			return 0, fmt.Errorf("%w: product %d", order.ErrProductUnavailable, ln.ProductID)
		}
		if p.stock < ln.Quantity {
			rollback()
			return 0, fmt.Errorf("%w: product %d has %d, requested %d",
				order.ErrInsufficientStock, ln.ProductID, p.stock, ln.Quantity)
		}
		p.stock -= ln.Quantity
		applied = append(applied, ln)

		sub := p.price.Mul(decimal.NewFromInt(int64(ln.Quantity)))
		total = total.Add(sub)
		items = append(items, order.Item{
			ID:        int64(i + 1),
			ProductID: ln.ProductID,
			Quantity:  ln.Quantity,
			Subtotal:  sub.String(),
		})
	}

	s.nextID++
	id := s.nextID
	for i := range items {
		items[i].OrderID = id
	}
	s.orders[id] = &order.Order{
		ID:          id,
		CustomerID:  customerID,
		OrderDate:   time.Now().UTC(),
		TotalAmount: total.String(),
		Status:      order.StatusPending,
	}
	s.items[id] = items
	return id, nil
}

func (s *stubOrderRepo) List(ctx context.Context) ([]order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []order.Order
	for _, o := range s.orders {
		out = append(out, *o)
	}
	return out, nil
}

func (s *stubOrderRepo) GetByID(ctx context.Context, id int64) (*order.Detail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, order.ErrNotFound
	}
	return &order.Detail{Order: *o, Items: append([]order.Item(nil), s.items[id]...)}, nil
}

func (s *stubOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return order.ErrNotFound
	}
	o.Status = status
	return nil
}

// stubCustomerRepo implements customer.Repository in memory.
type stubCustomerRepo struct {
	mu        sync.Mutex
	customers map[int64]*customer.Customer
	history   map[int64][]customer.OrderSummary
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{
		customers: make(map[int64]*customer.Customer),
		history:   make(map[int64][]customer.OrderSummary),
	}
}

func (s *stubCustomerRepo) List(ctx context.Context) ([]customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []customer.Customer
	for _, c := range s.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (s *stubCustomerRepo) GetByID(ctx context.Context, id int64) (*customer.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.customers[id]
	if !ok {
		return nil, customer.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *customer.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cur := range s.customers {
		if cur.Email == c.Email {
			return customer.ErrAlreadyExist
		}
	}
	c.ID = int64(len(s.customers) + 1)
	c.CreatedAt = time.Now().UTC()
	cp := *c
	s.customers[c.ID] = &cp
	return nil
}

func (s *stubCustomerRepo) Orders(ctx context.Context, id int64) ([]customer.OrderSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]customer.OrderSummary(nil), s.history[id]...), nil
}

func (s *stubCustomerRepo) Stats(ctx context.Context, id int64) (*customer.Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, o := range s.history[id] {
		total = total.Add(decimal.RequireFromString(o.TotalAmount))
	}
	return &customer.Stats{TotalOrders: len(s.history[id]), TotalSpent: total.String()}, nil
}

// stubStatsRepo implements stats.Repository with a fixed snapshot.
type stubStatsRepo struct {
	snapshot stats.Dashboard
}

func (s *stubStatsRepo) Dashboard(ctx context.Context) (*stats.Dashboard, error) {
	cp := s.snapshot
	return &cp, nil
}
