// Package ledgerdelivery manages delivery layer of ledger entries.
package ledgerdelivery

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

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Submit(ctx context.Context, arg domain.CreateEntryParams) (domain.SubmitTxResult, error)
	QueryRange(ctx context.Context, username, from, to string) ([]domain.Entry, error)
	Latest(ctx context.Context, username string, limit int32) ([]domain.Entry, error)
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(ls Service) Handler {
	return Handler{service: ls}
}

type data struct {
	Entry   domain.Entry   `json:"entry"`
	Balance domain.Balance `json:"balance"`
}
type response struct {
	Data data `json:"data,omitempty"`
}

type createRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	Amount   string `json:"amount" binding:"required"`
	Kind     string `json:"kind" binding:"required,kind"`
	Category string `json:"category" binding:"required,category"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	Note     string `json:"note"`
}

// Create handles http request to record an entry and apply its balance delta.
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

	arg := domain.CreateEntryParams{
		Username: authPayload.Username,
		Name:     req.Name,
		Amount:   req.Amount,
		Kind:     req.Kind,
		Category: req.Category,
		Date:     req.Date,
		Note:     req.Note,
	}

	result, err := h.service.Submit(ctx, arg)
	if err != nil {
		switch err {
		case domain.ErrInvalidName,
			domain.ErrInvalidAmount,
			domain.ErrNegativeAmount,
			domain.ErrUnsupportedKind,
			domain.ErrUnsupportedCategory,
			domain.ErrInvalidDate:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		case domain.ErrBalanceNotFound:
			gctx.JSON(http.StatusNotFound, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := response{
		Data: data{Entry: result.Entry, Balance: result.Balance},
	}

	gctx.JSON(http.StatusOK, res)
}

type listRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type dataEntries struct {
	Entries []domain.Entry `json:"entries"`
}
type responseEntries struct {
	Data dataEntries `json:"data,omitempty"`
}

// Latest handles http request to list the most recent entries.
func (h *Handler) Latest(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	entries, err := h.service.Latest(ctx, authPayload.Username, req.Limit)
	if err != nil {
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		return
	}

	res := responseEntries{
		Data: dataEntries{entries},
	}

	gctx.JSON(http.StatusOK, res)
}

type rangeRequest struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

// Range handles http request to list entries within a date range.
func (h *Handler) Range(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req rangeRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
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

	entries, err := h.service.QueryRange(ctx, authPayload.Username, req.From, req.To)
	if err != nil {
		switch err {
		case domain.ErrInvalidDate, domain.ErrInvalidRange:
			gctx.JSON(http.StatusBadRequest, web.Error(err))
			return
		}

		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	res := responseEntries{
		Data: dataEntries{entries},
	}

	gctx.JSON(http.StatusOK, res)
}
