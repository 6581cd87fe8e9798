package lending

import (
	"time"
)

const (
	// MaxLTVRatio is the origination ceiling for loan_amount / collateral value.
	MaxLTVRatio = 0.7
	// AnnualInterestRate is the single global rate applied to every loan.
	AnnualInterestRate = 0.08
	// SatoshisPerBTC converts smallest collateral units to whole BTC.
	SatoshisPerBTC = 100_000_000.0

	secondsPerYear = 365.25 * 24 * 60 * 60
)

type RequestLoanInput struct {
	CollateralSats  int64 `json:"collateral_amount"`
	RequestedAmount int64 `json:"requested_amount"`
	DurationDays    int   `json:"loan_duration_days"`
}

type LoanDTO struct {
	ID             uint64    `json:"id"`
	Borrower       string    `json:"borrower"`
	CollateralSats int64     `json:"collateral_amount"`
	LoanAmount     int64     `json:"loan_amount"`
	InterestRate   float64   `json:"interest_rate"`
	LTVRatio       float64   `json:"ltv_ratio"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	DueDate        time.Time `json:"due_date"`
}

type ProfileDTO struct {
	Identity        string    `json:"identity"`
	TotalCollateral int64     `json:"total_collateral"`
	ActiveLoans     []uint64  `json:"active_loans"`
	CreditScore     int       `json:"credit_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type RepaymentDTO struct {
	ReceiptID string `json:"receipt_id"`
	LoanID    uint64 `json:"loan_id"`
	// Principal plus accrued interest, minor fiat units.
	TotalDue int64  `json:"total_due"`
	Interest int64  `json:"interest"`
	Message  string `json:"message"`
}
