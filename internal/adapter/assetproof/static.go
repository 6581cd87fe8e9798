package assetproof

import (
	"context"
	"strings"

	domain "bbl-backend/internal/domain/assetproof"
)

// StaticVerifier is the stand-in for the chain integration service: one fixed
// deposit address with a fixed balance, and transaction ids that verify as
// long as they are non-empty. Production swaps this for a real client.
type StaticVerifier struct {
	Address     string
	Network     string
	BalanceSats int64
}

func NewStaticVerifier(address, network string, balanceSats int64) *StaticVerifier {
	return &StaticVerifier{Address: address, Network: network, BalanceSats: balanceSats}
}

func (s *StaticVerifier) AddressFor(ctx context.Context, identity string) (domain.Address, error) {
	return domain.Address{Address: s.Address, Network: s.Network}, nil
}

func (s *StaticVerifier) BalanceOf(ctx context.Context, address string) (domain.Balance, error) {
	return domain.Balance{Address: address, BalanceSats: s.BalanceSats}, nil
}

func (s *StaticVerifier) VerifyTransaction(ctx context.Context, txID string) (bool, error) {
	if strings.TrimSpace(txID) == "" {
		return false, domain.ErrInvalidTxID
	}
	return true, nil
}
