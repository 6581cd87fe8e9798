package loan

import "context"

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByID(ctx context.Context, id uint64) (*Loan, error)
	// GetByIDForUpdate locks the row inside the current transaction.
	GetByIDForUpdate(ctx context.Context, id uint64) (*Loan, error)
	ListByBorrower(ctx context.Context, borrower string) ([]Loan, error)
	Save(ctx context.Context, l *Loan) error
}
