// Package balancedelivery manages delivery layer of user balances.
package balancedelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/middleware"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"
	"github.com/go-petr/pocket-ledger/pkg/web"
)

// Service provides service layer interface needed by balance delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package balancedelivery
type Service interface {
	Initialize(ctx context.Context, username, initial string) (domain.Balance, error)
	Read(ctx context.Context, username string) (domain.Balance, error)
	Reconcile(ctx context.Context, username string) (domain.Balance, error)
}

// Handler facilitates balance delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns balance handler.
func NewHandler(bs Service) Handler {
	return Handler{service: bs}
}

type data struct {
	Balance domain.Balance `json:"balance"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Initial string `json:"initial" binding:"required"`
}

// Create handles http request to initialize the user's balance.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		var (
			ve     validator.ValidationErrors
			errMsg string
		)

		if errors.As(err, &ve) {
			field := ve[0]
			errMsg = field.Field() + web.GetErrorMsg(field)
		}

		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: errMsg})

		return
	}

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	balance, err := h.service.Initialize(ctx, authPayload.Username, req.Initial)
	if err != nil {
		switch err {
		case domain.ErrInvalidUsername, domain.ErrInvalidAmount, domain.ErrNegativeAmount:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrBalanceAlreadyInitialized:
			gctx.JSON(http.StatusConflict, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{balance},
	}

	gctx.JSON(http.StatusOK, res)
}

// Get handles http request to read the user's current balance.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	balance, err := h.service.Read(ctx, authPayload.Username)
	if err != nil {
		if err == domain.ErrBalanceNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{balance},
	}

	gctx.JSON(http.StatusOK, res)
}

// Reconcile handles http request to recompute the balance from the ledger.
func (h *Handler) Reconcile(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	authPayload := gctx.MustGet(middleware.AuthPayloadKey).(*tokenpkg.Payload)

	balance, err := h.service.Reconcile(ctx, authPayload.Username)
	if err != nil {
		if err == domain.ErrBalanceNotFound {
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{balance},
	}

	gctx.JSON(http.StatusOK, res)
}
