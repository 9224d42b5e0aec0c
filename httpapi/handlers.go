package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"kwanzabet/models"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type placeBetRequest struct {
	Game           models.Game     `json:"game" binding:"required"`
	Stake          int64           `json:"stake" binding:"required"`
	SelectedNumber int             `json:"selected_number,omitempty"`
	Choice         models.CoinSide `json:"choice,omitempty"`
}

type amountRequest struct {
	Amount int64 `json:"amount" binding:"required"`
}

type withdrawRequest struct {
	Amount      int64                     `json:"amount" binding:"required"`
	Destination *models.PayoutDestination `json:"destination"`
}

type transferRequest struct {
	ToAccountID string `json:"to_account_id" binding:"required"`
	Amount      int64  `json:"amount" binding:"required"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleRegister(c *gin.Context) {
	account, err := s.accounts.Register(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

func (s *Server) handleGetAccount(c *gin.Context) {
	account, err := s.accounts.Get(c.Request.Context(), accountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

func (s *Server) handleDeactivate(c *gin.Context) {
	if err := s.accounts.Deactivate(c.Request.Context(), accountID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deactivated"})
}

func (s *Server) handlePlaceBet(c *gin.Context) {
	var req placeBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input := models.BetInput{
		SelectedNumber: req.SelectedNumber,
		Choice:         req.Choice,
	}
	result, err := s.wagers.PlaceBet(c.Request.Context(), accountID(c), req.Game, req.Stake, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleBetHistory(c *gin.Context) {
	records, err := s.wagers.BetHistory(c.Request.Context(), accountID(c), queryInt(c, "limit"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bets": records})
}

func (s *Server) handleDeposit(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.wallet.Deposit(c.Request.Context(), accountID(c), req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleWithdraw(c *gin.Context) {
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.wallet.Withdraw(c.Request.Context(), accountID(c), req.Amount, req.Destination)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleTransfer(c *gin.Context) {
	var req transferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := s.transfers.Transfer(c.Request.Context(), accountID(c), req.ToAccountID, req.Amount)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleTransactionHistory(c *gin.Context) {
	records, err := s.wallet.TransactionHistory(c.Request.Context(), accountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": records})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.stats.GetAccountStats(c.Request.Context(), accountID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleScoreboard(c *gin.Context) {
	limit := queryInt(c, "limit")
	if limit <= 0 {
		limit = 10
	}
	entries, err := s.stats.GetScoreboard(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"scoreboard": entries})
}

func accountID(c *gin.Context) string {
	return c.GetString("accountID")
}

func queryInt(c *gin.Context, key string) int {
	raw := c.Query(key)
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

// writeError maps the service error taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 with a generic body so internal
// details never leak to callers.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidGame),
		errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrBelowMinimum),
		errors.Is(err, models.ErrMissingDestination):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientBalance):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAccountInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAccountExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrRecordedUnlogged):
		// The ledger moved even though the request failed. The caller
		// must not retry blindly.
		log.WithError(err).Error("Mutation recorded but not logged")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation applied but not recorded", "code": "recorded_unlogged"})
	default:
		log.WithError(err).Error("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
