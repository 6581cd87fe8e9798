package market

import "context"

type Repository interface {
	Get(ctx context.Context) (*Data, error)
	Save(ctx context.Context, d *Data) error
	// Seed inserts the initial quote if no row exists yet; no-op otherwise.
	Seed(ctx context.Context, priceUSD float64) error
}
