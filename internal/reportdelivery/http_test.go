package reportdelivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/go-petr/pocket-ledger/internal/domain"
	"github.com/go-petr/pocket-ledger/internal/middleware"
	"github.com/go-petr/pocket-ledger/internal/reportservice"
	"github.com/go-petr/pocket-ledger/pkg/errorspkg"
	"github.com/go-petr/pocket-ledger/pkg/randompkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"
	"github.com/go-petr/pocket-ledger/pkg/web"
	"github.com/golang/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestGet(t *testing.T) {
	username := randompkg.Username()
	tokenSymmetricKey := randompkg.String(32)

	tokenMaker, err := tokenpkg.NewPasetoMaker(tokenSymmetricKey)
	if err != nil {
		t.Fatalf("tokenpkg.NewPasetoMaker(%v) returned error: %v", tokenSymmetricKey, err)
	}

	authType := middleware.AuthTypeBearer
	duration := time.Minute

	from, to := "2024-01-01", "2024-01-31"

	testCases := []struct {
		name           string
		query          string
		setupAuth      func(t *testing.T, r *http.Request) error
		buildStubs     func(reportService *MockService)
		wantStatusCode int
		wantError      string
		checkBody      func(body []byte)
	}{
		{
			name:  "OKByCategory",
			query: "?from=" + from + "&to=" + to + "&group_by=category",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Eq(username), gomock.Eq(from), gomock.Eq(to), gomock.Eq(reportservice.ByCategory)).
					Times(1).
					Return(map[string]string{"Food": "50", "Bill": "20"}, nil)
			},
			wantStatusCode: http.StatusOK,
			checkBody: func(body []byte) {
				res := web.Response{
					Data: &struct {
						Sums map[string]string `json:"sums"`
					}{},
				}

				if err := json.Unmarshal(body, &res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				got := res.Data.(*struct {
					Sums map[string]string `json:"sums"`
				})

				want := map[string]string{"Food": "50", "Bill": "20"}
				if diff := cmp.Diff(want, got.Sums); diff != "" {
					t.Errorf("res.Data.Sums mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "OKSeries",
			query: "?from=" + from + "&to=" + to + "&group_by=series",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Series(gomock.Any(), gomock.Eq(username), gomock.Eq(from), gomock.Eq(to)).
					Times(1).
					Return(map[reportservice.DateKind]string{
						{Date: "2024-01-06", Kind: "Debit"}:  "20",
						{Date: "2024-01-05", Kind: "Credit"}: "50",
						{Date: "2024-01-05", Kind: "Debit"}:  "5",
					}, nil)
			},
			wantStatusCode: http.StatusOK,
			checkBody: func(body []byte) {
				res := web.Response{
					Data: &struct {
						Series []seriesPoint `json:"series"`
					}{},
				}

				if err := json.Unmarshal(body, &res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				got := res.Data.(*struct {
					Series []seriesPoint `json:"series"`
				})

				want := []seriesPoint{
					{Date: "2024-01-05", Kind: "Credit", Sum: "50"},
					{Date: "2024-01-05", Kind: "Debit", Sum: "5"},
					{Date: "2024-01-06", Kind: "Debit", Sum: "20"},
				}

				if diff := cmp.Diff(want, got.Series); diff != "" {
					t.Errorf("res.Data.Series mismatch (-want +got):\n%s", diff)
				}
			},
		},
		{
			name:  "NoAuthorization",
			query: "?from=" + from + "&to=" + to + "&group_by=category",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return nil
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusUnauthorized,
			wantError:      middleware.ErrAuthHeaderNotFound.Error(),
		},
		{
			name:  "MissingGroupBy",
			query: "?from=" + from + "&to=" + to,
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "GroupBy is required",
		},
		{
			name:  "UnsupportedGroupBy",
			query: "?from=" + from + "&to=" + to + "&group_by=note",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "GroupBy is invalid",
		},
		{
			name:  "MalformedFrom",
			query: "?from=Jan-1&to=" + to + "&group_by=date",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      "From must be formatted as 2006-01-02",
		},
		{
			name:  "InvertedRange",
			query: "?from=" + to + "&to=" + from + "&group_by=kind",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Eq(username), gomock.Eq(to), gomock.Eq(from), gomock.Eq(reportservice.ByKind)).
					Times(1).
					Return(nil, domain.ErrInvalidRange)
			},
			wantStatusCode: http.StatusBadRequest,
			wantError:      domain.ErrInvalidRange.Error(),
		},
		{
			name:  "InternalServerError",
			query: "?from=" + from + "&to=" + to + "&group_by=date",
			setupAuth: func(t *testing.T, r *http.Request) error {
				return middleware.AddAuthorization(r, tokenMaker, authType, username, duration)
			},
			buildStubs: func(reportService *MockService) {
				reportService.EXPECT().
					Report(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).
					Return(nil, errorspkg.ErrInternal)
			},
			wantStatusCode: http.StatusInternalServerError,
			wantError:      errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			reportService := NewMockService(ctrl)
			reportHandler := NewHandler(reportService)

			server := gin.New()
			server.Use(middleware.AuthMiddleware(tokenMaker))
			server.GET("/reports", reportHandler.Get)

			tc.buildStubs(reportService)

			req, err := http.NewRequest(http.MethodGet, "/reports"+tc.query, nil)
			if err != nil {
				t.Fatalf("Creating request error: %v", err)
			}

			if err = tc.setupAuth(t, req); err != nil {
				t.Fatalf("tc.setupAuth(t, %+v) returned error: %v", req, err)
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)

			if got := recorder.Code; got != tc.wantStatusCode {
				t.Errorf("Status code: got %v, want %v", got, tc.wantStatusCode)
			}

			if tc.wantStatusCode != http.StatusOK {
				var res web.Response
				if err := json.NewDecoder(recorder.Body).Decode(&res); err != nil {
					t.Errorf("Decoding response body error: %v", err)
				}

				if res.Error != tc.wantError {
					t.Errorf(`res.Error=%q, want %q`, res.Error, tc.wantError)
				}

				return
			}

			tc.checkBody(recorder.Body.Bytes())
		})
	}
}
