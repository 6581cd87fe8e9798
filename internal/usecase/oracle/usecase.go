package oracle

import (
	"context"
	"time"

	domainMarket "bbl-backend/internal/domain/market"
)

type Usecase struct {
	market domainMarket.Repository
	auth   Authorizer

	now func() time.Time
}

func NewUsecase(market domainMarket.Repository, auth Authorizer) *Usecase {
	return &Usecase{market: market, auth: auth, now: time.Now}
}

func (u *Usecase) GetPrice(ctx context.Context) (*PriceDTO, error) {
	md, err := u.market.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &PriceDTO{PriceUSD: md.PriceUSD, LastUpdated: md.LastUpdated}, nil
}

// UpdatePrice replaces the quote. Only the configured oracle identity may
// call this; the layer below enforces nothing.
func (u *Usecase) UpdatePrice(ctx context.Context, identity string, newPrice float64) (*PriceDTO, error) {
	if !u.auth.CanSetPrice(identity) {
		return nil, ErrForbidden
	}
	if newPrice <= 0 {
		return nil, domainMarket.ErrInvalidPrice
	}

	md := &domainMarket.Data{PriceUSD: newPrice, LastUpdated: u.now().UTC()}
	if err := u.market.Save(ctx, md); err != nil {
		return nil, err
	}
	return &PriceDTO{PriceUSD: md.PriceUSD, LastUpdated: md.LastUpdated}, nil
}
