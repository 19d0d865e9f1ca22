package order

import (
	"context"
	"log"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Place assigns the order its ID and appends it to the log.
func (s *Service) Place(ctx context.Context, o Order) (string, error) {
	o.OrderID = NewOrderID()

	if err := s.repo.Append(ctx, o); err != nil {
		return "", err
	}

	log.Printf("order placed id=%s store=%v items=%d", o.OrderID, o.Store["name"], len(o.Cart))
	return o.OrderID, nil
}

func (s *Service) List(ctx context.Context) ([]Order, error) {
	return s.repo.List(ctx)
}
