package oracle

import (
	"errors"
	"time"
)

var ErrForbidden = errors.New("identity not allowed to update price")

type PriceDTO struct {
	PriceUSD    float64   `json:"btc_price_usd"`
	LastUpdated time.Time `json:"last_updated"`
}

// Authorizer decides which caller identities may set the price.
type Authorizer interface {
	CanSetPrice(identity string) bool
}

// AllowList authorizes exactly the configured oracle identities.
type AllowList []string

func (a AllowList) CanSetPrice(identity string) bool {
	for _, v := range a {
		if v == identity {
			return true
		}
	}
	return false
}
