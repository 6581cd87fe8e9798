package user

import "context"

type Repository interface {
	// Create inserts a fresh profile (DB uniqueness on identity).
	Create(ctx context.Context, p *Profile) error
	GetByIdentity(ctx context.Context, identity string) (*Profile, error)
	// GetByIdentityForUpdate locks the row inside the current transaction.
	GetByIdentityForUpdate(ctx context.Context, identity string) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
}
