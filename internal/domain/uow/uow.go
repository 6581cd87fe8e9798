package uow

import (
	"context"

	"bbl-backend/internal/domain/loan"
	"bbl-backend/internal/domain/market"
	"bbl-backend/internal/domain/user"
)

type Repos struct {
	Loans  loan.Repository
	Users  user.Repository
	Market market.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock loan row first, then pass it in
	WithinLoanTx(ctx context.Context, loanID uint64, fn func(r Repos, l *loan.Loan) error) error
}
