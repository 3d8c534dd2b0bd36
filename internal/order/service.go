package order

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidInput = errors.New("invalid input")

// Service validates placement requests before any transactional work
// begins and delegates the atomic part to the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place creates a multi-item order. Validation failures are reported
// before a transaction is opened; everything past that point is
// all-or-nothing inside the repository.
func (s *Service) Place(ctx context.Context, customerID int64, lines []Line) (int64, error) {
	if customerID <= 0 {
		return 0, fmt.Errorf("%w: customer_id is required", ErrInvalidInput)
	}
	if len(lines) == 0 {
		return 0, fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}
	for _, ln := range lines {
		if ln.ProductID <= 0 {
			return 0, fmt.Errorf("%w: product_id is required", ErrInvalidInput)
		}
		if ln.Quantity <= 0 {
			return 0, fmt.Errorf("%w: quantity must be positive (product %d)", ErrInvalidInput, ln.ProductID)
		}
	}

	return s.repo.Place(ctx, customerID, lines)
}

// PlaceSingle is the one-line order path. Same pipeline as Place.
func (s *Service) PlaceSingle(ctx context.Context, customerID, productID int64, quantity int) (int64, error) {
	if productID <= 0 || quantity <= 0 {
		return 0, fmt.Errorf("%w: product_id and a positive quantity are required", ErrInvalidInput)
	}
	return s.Place(ctx, customerID, []Line{{ProductID: productID, Quantity: quantity}})
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) error {
	if !ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
