package api

import (
	"encoding/json"
	"net/http"
	"time"

	"VotePulse/internal/domain/models"
	domrepo "VotePulse/internal/domain/repository"
	"VotePulse/internal/service/cache"
	"VotePulse/internal/usecase"
	xhttp "VotePulse/pkg/http"
	xlogger "VotePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// TokensEchoHandler serves the ranked token list and the vote endpoint.
type TokensEchoHandler struct {
	logger   *xlogger.Logger
	pipeline *usecase.RankingPipeline
	votes    domrepo.VoteLedger
	metrics  domrepo.Metrics

	rankings     cache.BytesCache
	cacheTTL     time.Duration
	defaultChain string
}

func NewTokensEchoHandler(
	logger *xlogger.Logger,
	pipeline *usecase.RankingPipeline,
	votes domrepo.VoteLedger,
	metrics domrepo.Metrics,
	rankings cache.BytesCache,
	cacheTTL time.Duration,
	defaultChain string,
) *TokensEchoHandler {
	return &TokensEchoHandler{
		logger:       logger,
		pipeline:     pipeline,
		votes:        votes,
		metrics:      metrics,
		rankings:     rankings,
		cacheTTL:     cacheTTL,
		defaultChain: defaultChain,
	}
}

func (h *TokensEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/tokens-vote", h.Tokens)
	e.POST("/vote", h.Vote)
}

// Tokens runs the ranking pipeline for the requested chain. Recent results
// may be served from the ranking cache when one is configured.
func (h *TokensEchoHandler) Tokens(c echo.Context) error {
	req := &models.RankingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr.Message)
	}

	chain := req.Chain
	if chain == "" {
		chain = h.defaultChain
	}

	cacheKey := "tokens-vote:" + chain
	if h.cached() {
		if b, ok, err := h.rankings.GetBytes(cacheKey); err == nil && ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	records, err := h.pipeline.Rank(c.Request().Context(), chain)
	if err != nil {
		h.logger.Error("ranking pipeline error", xlogger.String("chain", chain), xlogger.Error(err))
		return xhttp.PipelineErrorResponse(c, err)
	}

	if h.cached() {
		if b, err := json.Marshal(records); err == nil {
			_ = h.rankings.SetBytes(cacheKey, b, h.cacheTTL)
		}
	}

	return xhttp.SuccessResponse(c, records)
}

// Vote increments the persistent vote counter for one token address.
func (h *TokensEchoHandler) Vote(c echo.Context) error {
	req := &models.VoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, "Token address required")
	}

	n, err := h.votes.Increment(req.Address)
	if err != nil {
		h.logger.Error("vote increment error", xlogger.String("address", req.Address), xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}

	if h.metrics != nil {
		h.metrics.RecordVote(req.Address)
	}

	return xhttp.SuccessResponse(c, models.VoteResponse{Success: true, Votes: n})
}

func (h *TokensEchoHandler) cached() bool {
	return h.rankings != nil && h.cacheTTL > 0
}
