// Package reportdelivery manages delivery layer of range reports.
package reportdelivery

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/middleware"
	"github.com/go-petr/pocket-ledger/internal/reportservice"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"
	"github.com/go-petr/pocket-ledger/pkg/web"
)

// Service provides service layer interface needed by report delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package reportdelivery
type Service interface {
	Report(ctx context.Context, username, from, to string, dimension reportservice.Dimension) (map[string]string, error)
	Series(ctx context.Context, username, from, to string) (map[reportservice.DateKind]string, error)
}

// Handler facilitates report delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns report handler.
func NewHandler(rs Service) Handler {
	return Handler{service: rs}
}

type reportRequest struct {
	From    string `form:"from" binding:"required,datetime=2006-01-02"`
	To      string `form:"to" binding:"required,datetime=2006-01-02"`
	GroupBy string `form:"group_by" binding:"required,oneof=date kind category series"`
}

type dataSums struct {
	Sums map[string]string `json:"sums"`
}
type responseSums struct {
	Data dataSums `json:"data,omitempty"`
}

type seriesPoint struct {
	Date string `json:"date"`
	Kind string `json:"kind"`
	Sum  string `json:"sum"`
}

type dataSeries struct {
	Series []seriesPoint `json:"series"`
}
type responseSeries struct {
	Data dataSeries `json:"data,omitempty"`
}

// Get handles http request to compute grouped sums over a date range.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(gctx)

	var req reportRequest
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

	if req.GroupBy == "series" {
		sums, err := h.service.Series(ctx, authPayload.Username, req.From, req.To)
		if err != nil {
			h.writeErr(gctx, err)
			return
		}

		series := make([]seriesPoint, 0, len(sums))
		for k, v := range sums {
			series = append(series, seriesPoint{Date: k.Date, Kind: k.Kind, Sum: v})
		}

		sort.Slice(series, func(i, j int) bool {
			if series[i].Date != series[j].Date {
				return series[i].Date < series[j].Date
			}
			return series[i].Kind < series[j].Kind
		})

		gctx.JSON(http.StatusOK, responseSeries{Data: dataSeries{series}})

		return
	}

	sums, err := h.service.Report(ctx, authPayload.Username, req.From, req.To, reportservice.Dimension(req.GroupBy))
	if err != nil {
		h.writeErr(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, responseSums{Data: dataSums{sums}})
}

func (h *Handler) writeErr(gctx *gin.Context, err error) {
	switch err {
	case domain.ErrInvalidDate, domain.ErrInvalidRange, reportservice.ErrUnsupportedDimension:
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
}
