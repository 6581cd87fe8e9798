package loan

import (
	"errors"
	"fmt"
	"time"
)

type Status string

const (
	StatusActive     Status = "active"
	StatusRepaid     Status = "repaid"
	StatusLiquidated Status = "liquidated" // reserved for a future liquidation policy
	StatusDefaulted  Status = "defaulted"  // reserved
)

var (
	ErrNotFound           = errors.New("loan not found")
	ErrNotActive          = errors.New("loan not active")
	ErrNotBorrower        = errors.New("not authorized")
	ErrCollateralRequired = errors.New("collateral amount must be greater than 0")
	ErrLoanAmountRequired = errors.New("loan amount must be greater than 0")
)

// LTVError reports an origination rejected by the loan-to-value ceiling.
type LTVError struct {
	Ratio float64
	Max   float64
}

func (e *LTVError) Error() string {
	return fmt.Sprintf("LTV ratio too high: %.2f. Maximum: %.2f", e.Ratio, e.Max)
}

type Loan struct {
	// Ledger id: AUTO_INCREMENT, strictly increasing, never reused.
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Caller identity that originated the loan.
	Borrower string `gorm:"column:borrower;size:64;not null;index:idx_loans_borrower" json:"borrower"`
	// Satoshis locked at origination; immutable after creation.
	CollateralSats int64 `gorm:"column:collateral_amount;not null" json:"collateral_amount"`
	// Principal in minor fiat units (cents); immutable after creation.
	LoanAmount   int64     `gorm:"column:loan_amount;not null" json:"loan_amount"`
	InterestRate float64   `gorm:"column:interest_rate;type:decimal(6,4);not null" json:"interest_rate"`
	LTVRatio     float64   `gorm:"column:ltv_ratio;type:decimal(8,6);not null" json:"ltv_ratio"`
	Status       Status    `gorm:"column:status;size:16;not null;default:'active'" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	DueDate      time.Time `gorm:"column:due_date;not null" json:"due_date"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

func (Loan) TableName() string { return "loans" }
