package proofmock

import (
	"context"

	domain "bbl-backend/internal/domain/assetproof"
)

var _ domain.Verifier = (*Verifier)(nil)

// Verifier is a function-backed mock for the asset-proof collaborator.
// Unfilled fields behave like a fully funded, always-verifying chain.
type Verifier struct {
	AddressForFn        func(ctx context.Context, identity string) (domain.Address, error)
	BalanceOfFn         func(ctx context.Context, address string) (domain.Balance, error)
	VerifyTransactionFn func(ctx context.Context, txID string) (bool, error)
}

func (m *Verifier) AddressFor(ctx context.Context, identity string) (domain.Address, error) {
	if m.AddressForFn != nil {
		return m.AddressForFn(ctx, identity)
	}
	return domain.Address{Address: "tb1q" + identity, Network: "testnet"}, nil
}

func (m *Verifier) BalanceOf(ctx context.Context, address string) (domain.Balance, error) {
	if m.BalanceOfFn != nil {
		return m.BalanceOfFn(ctx, address)
	}
	return domain.Balance{Address: address, BalanceSats: 1 << 62}, nil
}

func (m *Verifier) VerifyTransaction(ctx context.Context, txID string) (bool, error) {
	if m.VerifyTransactionFn != nil {
		return m.VerifyTransactionFn(ctx, txID)
	}
	return true, nil
}
