package lending

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bbl-backend/internal/domain/assetproof"
	domainLoan "bbl-backend/internal/domain/loan"
	domainMarket "bbl-backend/internal/domain/market"
	domainUser "bbl-backend/internal/domain/user"
	"bbl-backend/internal/domain/uow"
	"bbl-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans    domainLoan.Repository
	users    domainUser.Repository
	market   domainMarket.Repository
	uow      uow.UnitOfWork
	verifier assetproof.Verifier

	now func() time.Time
}

// NewUsecase: read repos for queries, a UoW for the multi-store flows, and the
// asset-proof collaborator as an origination precondition.
func NewUsecase(loans domainLoan.Repository, users domainUser.Repository, market domainMarket.Repository, tx uow.UnitOfWork, v assetproof.Verifier) *Usecase {
	return &Usecase{loans: loans, users: users, market: market, uow: tx, verifier: v, now: time.Now}
}

func (u *Usecase) CreateProfile(ctx context.Context, identity string) (*ProfileDTO, error) {
	_, err := u.users.GetByIdentity(ctx, identity)
	switch {
	case err == nil:
		return nil, domainUser.ErrDuplicateProfile
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	p := &domainUser.Profile{
		Identity:    identity,
		ActiveLoans: []uint64{},
		CreditScore: domainUser.DefaultCreditScore,
		CreatedAt:   u.now().UTC(),
	}
	if err := u.users.Create(ctx, p); err != nil {
		return nil, err
	}
	return profileDTO(p), nil
}

func (u *Usecase) RequestLoan(ctx context.Context, identity string, in RequestLoanInput) (*LoanDTO, error) {
	if in.CollateralSats <= 0 {
		return nil, domainLoan.ErrCollateralRequired
	}
	if in.RequestedAmount <= 0 {
		return nil, domainLoan.ErrLoanAmountRequired
	}

	// Asset proof before the transaction: the declared collateral must be
	// covered by the borrower's on-chain balance.
	if err := u.verifyCollateral(ctx, identity, in.CollateralSats); err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		profile, err := r.Users.GetByIdentityForUpdate(ctx, identity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainUser.ErrProfileMissing
			}
			return err
		}

		md, err := r.Market.Get(ctx)
		if err != nil {
			return err
		}

		collateralValueCents := collateralValueCents(in.CollateralSats, md.PriceUSD)
		ltv := float64(in.RequestedAmount) / float64(collateralValueCents)
		if ltv > MaxLTVRatio {
			return &domainLoan.LTVError{Ratio: ltv, Max: MaxLTVRatio}
		}

		now := u.now().UTC()
		l := &domainLoan.Loan{
			Borrower:       identity,
			CollateralSats: in.CollateralSats,
			LoanAmount:     in.RequestedAmount,
			InterestRate:   AnnualInterestRate,
			LTVRatio:       ltv,
			Status:         domainLoan.StatusActive,
			CreatedAt:      now,
			DueDate:        now.Add(time.Duration(in.DurationDays) * 24 * time.Hour),
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		profile.AddLoan(l.ID, in.CollateralSats)
		if err := r.Users.Save(ctx, profile); err != nil {
			return err
		}

		dto = loanDTO(l)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) RepayLoan(ctx context.Context, identity string, loanID uint64) (*RepaymentDTO, error) {
	var dto *RepaymentDTO
	err := u.uow.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.Borrower != identity {
			return domainLoan.ErrNotBorrower
		}
		if l.Status != domainLoan.StatusActive {
			return domainLoan.ErrNotActive
		}

		elapsedYears := u.now().UTC().Sub(l.CreatedAt).Seconds() / secondsPerYear
		interest := int64(float64(l.LoanAmount) * l.InterestRate * elapsedYears)
		totalDue := l.LoanAmount + interest

		l.Status = domainLoan.StatusRepaid
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		profile, err := r.Users.GetByIdentityForUpdate(ctx, identity)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainUser.ErrProfileMissing
			}
			return err
		}
		profile.RemoveLoan(l.ID, l.CollateralSats)
		if err := r.Users.Save(ctx, profile); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			ReceiptID: id.NewID32(),
			LoanID:    l.ID,
			TotalDue:  totalDue,
			Interest:  interest,
			Message:   fmt.Sprintf("Loan repaid. Total: $%.2f", float64(totalDue)/100),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// CalculateMaxLoan quotes the largest principal the current price admits. The
// conversion matches origination exactly, so the returned value is always
// accepted and one cent more is always rejected.
func (u *Usecase) CalculateMaxLoan(ctx context.Context, collateralSats int64) (int64, error) {
	md, err := u.market.Get(ctx)
	if err != nil {
		return 0, err
	}
	cents := collateralValueCents(collateralSats, md.PriceUSD)
	max := int64(float64(cents) * MaxLTVRatio)
	// Float truncation can land one cent short of the ceiling; nudge until the
	// next cent fails the same comparison origination applies.
	for cents > 0 && float64(max+1)/float64(cents) <= MaxLTVRatio {
		max++
	}
	return max, nil
}

func (u *Usecase) GetLoan(ctx context.Context, loanID uint64) (*LoanDTO, error) {
	l, err := u.loans.GetByID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainLoan.ErrNotFound
		}
		return nil, err
	}
	return loanDTO(l), nil
}

func (u *Usecase) GetUserLoans(ctx context.Context, identity string) ([]LoanDTO, error) {
	ls, err := u.loans.ListByBorrower(ctx, identity)
	if err != nil {
		return nil, err
	}
	out := make([]LoanDTO, 0, len(ls))
	for i := range ls {
		out = append(out, *loanDTO(&ls[i]))
	}
	return out, nil
}

func (u *Usecase) GetUserProfile(ctx context.Context, identity string) (*ProfileDTO, error) {
	p, err := u.users.GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrProfileMissing
		}
		return nil, err
	}
	return profileDTO(p), nil
}

func (u *Usecase) verifyCollateral(ctx context.Context, identity string, sats int64) error {
	addr, err := u.verifier.AddressFor(ctx, identity)
	if err != nil {
		return fmt.Errorf("asset proof: %w", err)
	}
	bal, err := u.verifier.BalanceOf(ctx, addr.Address)
	if err != nil {
		return fmt.Errorf("asset proof: %w", err)
	}
	if bal.BalanceSats < sats {
		return assetproof.ErrUnverified
	}
	return nil
}

// collateralValueCents converts satoshis to minor fiat units at the given
// price, truncating toward zero.
func collateralValueCents(sats int64, priceUSD float64) int64 {
	usd := float64(sats) / SatoshisPerBTC * priceUSD
	return int64(usd * 100)
}

func loanDTO(l *domainLoan.Loan) *LoanDTO {
	return &LoanDTO{
		ID:             l.ID,
		Borrower:       l.Borrower,
		CollateralSats: l.CollateralSats,
		LoanAmount:     l.LoanAmount,
		InterestRate:   l.InterestRate,
		LTVRatio:       l.LTVRatio,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
		DueDate:        l.DueDate,
	}
}

func profileDTO(p *domainUser.Profile) *ProfileDTO {
	return &ProfileDTO{
		Identity:        p.Identity,
		TotalCollateral: p.TotalCollateral,
		ActiveLoans:     p.ActiveLoans,
		CreditScore:     p.CreditScore,
		CreatedAt:       p.CreatedAt,
	}
}
