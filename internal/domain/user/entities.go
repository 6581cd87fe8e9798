package user

import (
	"errors"
	"time"
)

const DefaultCreditScore = 750

var (
	ErrDuplicateProfile = errors.New("user profile already exists")
	ErrProfileMissing   = errors.New("user profile not found")
)

type Profile struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Caller identity as supplied by the platform gateway; immutable.
	Identity string `gorm:"column:identity;size:64;not null;uniqueIndex:ux_users_identity" json:"identity"`
	// Satoshis locked across this user's active loans.
	TotalCollateral int64 `gorm:"column:total_collateral;not null;default:0" json:"total_collateral"`
	// Ids of loans currently active for this user.
	ActiveLoans []uint64  `gorm:"column:active_loans;serializer:json" json:"active_loans"`
	CreditScore int       `gorm:"column:credit_score;not null" json:"credit_score"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Profile) TableName() string { return "user_profiles" }

// AddLoan records a newly originated loan against the profile.
func (p *Profile) AddLoan(id uint64, collateralSats int64) {
	p.ActiveLoans = append(p.ActiveLoans, id)
	p.TotalCollateral += collateralSats
}

// RemoveLoan releases a loan's collateral on repayment.
func (p *Profile) RemoveLoan(id uint64, collateralSats int64) {
	kept := p.ActiveLoans[:0]
	for _, v := range p.ActiveLoans {
		if v != id {
			kept = append(kept, v)
		}
	}
	p.ActiveLoans = kept
	p.TotalCollateral -= collateralSats
}

// HasLoan reports whether id is among the profile's active loans.
func (p *Profile) HasLoan(id uint64) bool {
	for _, v := range p.ActiveLoans {
		if v == id {
			return true
		}
	}
	return false
}
