package mysql

import (
	"context"
	"errors"
	"time"

	marketDomain "bbl-backend/internal/domain/market"

	"gorm.io/gorm"
)

// market_data holds exactly one row with this id.
const marketRowID = 1

type MarketRepository struct{ db *gorm.DB }

func NewMarketRepository(db *gorm.DB) *MarketRepository { return &MarketRepository{db: db} }

func (r *MarketRepository) Get(ctx context.Context) (*marketDomain.Data, error) {
	var out marketDomain.Data
	res := r.db.WithContext(ctx).Where("id = ?", marketRowID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, marketDomain.ErrNotSeeded
	}
	return &out, res.Error
}

func (r *MarketRepository) Save(ctx context.Context, d *marketDomain.Data) error {
	d.ID = marketRowID
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *MarketRepository) Seed(ctx context.Context, priceUSD float64) error {
	d := marketDomain.Data{ID: marketRowID, PriceUSD: priceUSD, LastUpdated: time.Now().UTC()}
	return r.db.WithContext(ctx).FirstOrCreate(&d, "id = ?", marketRowID).Error
}
