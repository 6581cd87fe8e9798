package assetproof

import (
	"context"
	"errors"
)

var (
	ErrUnverified  = errors.New("collateral not verifiable on chain")
	ErrInvalidTxID = errors.New("invalid transaction ID")
)

type Address struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

type Balance struct {
	Address     string `json:"address"`
	BalanceSats int64  `json:"balance_satoshis"`
}

// Verifier is the on-chain asset-proof collaborator. Origination uses it to
// confirm that declared collateral actually exists before accepting a loan.
type Verifier interface {
	AddressFor(ctx context.Context, identity string) (Address, error)
	BalanceOf(ctx context.Context, address string) (Balance, error)
	VerifyTransaction(ctx context.Context, txID string) (bool, error)
}
