package httpapi

import (
	"context"
	"net/http"
	"time"

	"kwanzabet/config"
	"kwanzabet/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Server exposes the ledger and wager services over HTTP
type Server struct {
	accounts  service.AccountService
	wagers    service.WagerService
	wallet    service.WalletService
	transfers service.TransferService
	stats     service.StatsService

	httpServer *http.Server
}

// NewServer creates the HTTP server and wires up all routes
func NewServer(
	cfg *config.Config,
	accounts service.AccountService,
	wagers service.WagerService,
	wallet service.WalletService,
	transfers service.TransferService,
	stats service.StatsService,
) *Server {
	s := &Server{
		accounts:  accounts,
		wagers:    wagers,
		wallet:    wallet,
		transfers: transfers,
		stats:     stats,
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	router.GET("/healthz", s.handleHealth)
	router.GET("/scoreboard", s.handleScoreboard)
	router.POST("/accounts", s.handleRegister)

	authed := router.Group("/", requireAccount())
	{
		authed.GET("/account", s.handleGetAccount)
		authed.DELETE("/account", s.handleDeactivate)
		authed.POST("/bets", s.handlePlaceBet)
		authed.GET("/bets", s.handleBetHistory)
		authed.POST("/deposits", s.handleDeposit)
		authed.POST("/withdrawals", s.handleWithdraw)
		authed.POST("/transfers", s.handleTransfer)
		authed.GET("/transactions", s.handleTransactionHistory)
		authed.GET("/stats", s.handleStats)
	}

	s.httpServer = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the underlying HTTP handler, for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server until it fails or is shut down
func (s *Server) Start() error {
	log.WithField("addr", s.httpServer.Addr).Info("HTTP server listening")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// requireAccount pulls the caller's account id from the X-Account-ID
// header. There is no authentication layer; the header stands in for
// whatever session the fronting gateway establishes.
func requireAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID := c.GetHeader("X-Account-ID")
		if accountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "X-Account-ID header is required"})
			return
		}
		c.Set("accountID", accountID)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start),
		}).Debug("Handled request")
	}
}
