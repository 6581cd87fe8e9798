package http

import (
	"net/http"

	"bbl-backend/internal/usecase/oracle"

	"github.com/labstack/echo/v4"
)

type OracleHandler struct{ uc *oracle.Usecase }

func NewOracleHandler(uc *oracle.Usecase) *OracleHandler { return &OracleHandler{uc: uc} }

type updatePriceReq struct {
	PriceUSD float64 `json:"btc_price_usd" validate:"required,gt=0,dec2"`
}

func (h *OracleHandler) GetPrice(c echo.Context) error {
	dto, err := h.uc.GetPrice(c.Request().Context())
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *OracleHandler) UpdatePrice(c echo.Context) error {
	identity, ok := callerIdentity(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing or invalid " + HeaderCallerID})
	}
	var req updatePriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdatePrice(c.Request().Context(), identity, req.PriceUSD)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
