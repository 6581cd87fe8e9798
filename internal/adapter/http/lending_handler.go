package http

import (
	"net/http"
	"strconv"

	"bbl-backend/internal/usecase/lending"

	"github.com/labstack/echo/v4"
)

type LendingHandler struct{ uc *lending.Usecase }

func NewLendingHandler(uc *lending.Usecase) *LendingHandler { return &LendingHandler{uc: uc} }

type requestLoanReq struct {
	CollateralSats  int64 `json:"collateral_amount"   validate:"required,gt=0"`
	RequestedAmount int64 `json:"requested_amount"    validate:"required,gt=0"`
	DurationDays    int   `json:"loan_duration_days"  validate:"required,gte=1,lte=3650"`
}

func (h *LendingHandler) CreateProfile(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderCallerID})
	}
	dto, err := h.uc.CreateProfile(c.Request().Context(), identity)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LendingHandler) RequestLoan(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderCallerID})
	}
	var req requestLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.RequestLoan(c.Request().Context(), identity, lending.RequestLoanInput(req))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LendingHandler) RepayLoan(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderCallerID})
	}
	loanID, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	dto, err := h.uc.RepayLoan(c.Request().Context(), identity, loanID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) GetLoan(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	dto, err := h.uc.GetLoan(c.Request().Context(), loanID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) GetUserLoans(c echo.Context) error {
	identity := c.Param("identity")
	if !reIdentity.MatchString(identity) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity path param"})
	}
	loans, err := h.uc.GetUserLoans(c.Request().Context(), identity)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, loans)
}

func (h *LendingHandler) GetUserProfile(c echo.Context) error {
	identity := c.Param("identity")
	if !reIdentity.MatchString(identity) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity path param"})
	}
	dto, err := h.uc.GetUserProfile(c.Request().Context(), identity)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LendingHandler) CalculateMaxLoan(c echo.Context) error {
	sats, err := strconv.ParseInt(c.QueryParam("collateral_amount"), 10, 64)
	if err != nil || sats < 0 {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid collateral_amount query param"})
	}
	max, err := h.uc.CalculateMaxLoan(c.Request().Context(), sats)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"max_loan": max})
}
