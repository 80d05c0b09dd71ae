// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/go-petr/pocket-ledger/internal/balancedelivery"
	"github.com/go-petr/pocket-ledger/internal/balancerepo"
	"github.com/go-petr/pocket-ledger/internal/balanceservice"
	"github.com/go-petr/pocket-ledger/internal/entryrepo"
	"github.com/go-petr/pocket-ledger/internal/ledgerdelivery"
	"github.com/go-petr/pocket-ledger/internal/ledgerrepo"
	"github.com/go-petr/pocket-ledger/internal/ledgerservice"
	"github.com/go-petr/pocket-ledger/internal/middleware"
	"github.com/go-petr/pocket-ledger/internal/reportdelivery"
	"github.com/go-petr/pocket-ledger/internal/reportservice"
	"github.com/go-petr/pocket-ledger/internal/sessiondelivery"
	"github.com/go-petr/pocket-ledger/internal/sessionservice"
	"github.com/go-petr/pocket-ledger/pkg/categorypkg"
	"github.com/go-petr/pocket-ledger/pkg/configpkg"
	"github.com/go-petr/pocket-ledger/pkg/tokenpkg"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB     *sql.DB
	Engine *gin.Engine
	Config configpkg.Config
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
func New(conn *sql.DB, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	entryRepo := entryrepo.NewRepoPGS(conn)
	balanceRepo := balancerepo.NewRepoPGS(conn)
	ledgerRepo := ledgerrepo.NewRepoPGS(conn)

	tokenMaker, err := tokenpkg.NewPasetoMaker(config.TokenSymmetricKey)
	if err != nil {
		return nil, errors.New("cannot create token maker")
	}

	ledgerService := ledgerservice.New(ledgerRepo, entryRepo)
	balanceService := balanceservice.New(balanceRepo)
	reportService := reportservice.New(ledgerService)
	sessionService := sessionservice.New(config, tokenMaker)

	ledgerHandler := ledgerdelivery.NewHandler(ledgerService)
	balanceHandler := balancedelivery.NewHandler(balanceService)
	reportHandler := reportdelivery.NewHandler(reportService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gin.Recovery())

	engine.POST("/sessions", sessionHandler.Create)

	authRoutes := engine.Group("/").Use(middleware.AuthMiddleware(sessionService.TokenMaker))

	authRoutes.POST("/balances", balanceHandler.Create)
	authRoutes.GET("/balances", balanceHandler.Get)
	authRoutes.POST("/balances/reconcile", balanceHandler.Reconcile)

	authRoutes.POST("/entries", ledgerHandler.Create)
	authRoutes.GET("/entries", ledgerHandler.Latest)
	authRoutes.GET("/entries/range", ledgerHandler.Range)

	authRoutes.GET("/reports", reportHandler.Get)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := v.RegisterValidation("kind", categorypkg.ValidKind); err != nil {
			return nil, errors.New("cannot register kind validator")
		}

		if err := v.RegisterValidation("category", categorypkg.ValidCategory); err != nil {
			return nil, errors.New("cannot register category validator")
		}
	}

	server := &Server{
		DB:     conn,
		Engine: engine,
		Config: config,
	}

	return server, nil
}
