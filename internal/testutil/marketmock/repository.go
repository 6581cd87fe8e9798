package marketmock

import (
	"context"

	domain "bbl-backend/internal/domain/market"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetFn  func(ctx context.Context) (*domain.Data, error)
	SaveFn func(ctx context.Context, d *domain.Data) error
	SeedFn func(ctx context.Context, priceUSD float64) error
}

func (m *Repo) Get(ctx context.Context) (*domain.Data, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, d *domain.Data) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) Seed(ctx context.Context, priceUSD float64) error {
	if m.SeedFn != nil {
		return m.SeedFn(ctx, priceUSD)
	}
	return nil
}
