package http

import (
	"errors"
	"net/http"
	"strings"

	"bbl-backend/internal/domain/assetproof"
	"bbl-backend/internal/domain/loan"
	"bbl-backend/internal/domain/market"
	"bbl-backend/internal/domain/user"
	"bbl-backend/internal/usecase/oracle"

	"github.com/labstack/echo/v4"
)

// HeaderCallerID carries the authenticated principal; the platform gateway
// sets it before requests reach this service.
const HeaderCallerID = "X-Caller-Id"

func callerIdentity(c echo.Context) (string, bool) {
	identity := strings.TrimSpace(c.Request().Header.Get(HeaderCallerID))
	if identity == "" || !reIdentity.MatchString(identity) {
		return "", false
	}
	return identity, true
}

// statusFor maps domain errors to HTTP codes.
func statusFor(err error) int {
	var ltvErr *loan.LTVError
	switch {
	case errors.Is(err, loan.ErrCollateralRequired),
		errors.Is(err, loan.ErrLoanAmountRequired),
		errors.Is(err, market.ErrInvalidPrice):
		return http.StatusBadRequest
	case errors.As(err, &ltvErr),
		errors.Is(err, assetproof.ErrUnverified):
		return http.StatusUnprocessableEntity
	case errors.Is(err, user.ErrDuplicateProfile),
		errors.Is(err, loan.ErrNotActive):
		return http.StatusConflict
	case errors.Is(err, loan.ErrNotFound),
		errors.Is(err, user.ErrProfileMissing):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrNotBorrower),
		errors.Is(err, oracle.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func jsonError(c echo.Context, err error) error {
	code := statusFor(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}
