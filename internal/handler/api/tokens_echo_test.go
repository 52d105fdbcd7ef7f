package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"VotePulse/internal/domain/models"
	"VotePulse/internal/service/cache"
	"VotePulse/internal/usecase"
	xlogger "VotePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

type stubProfiles struct {
	profiles []models.TokenProfile
	err      error
	calls    int
}

func (s *stubProfiles) LatestProfiles(ctx context.Context) ([]models.TokenProfile, error) {
	s.calls++
	return s.profiles, s.err
}

type stubMarkets struct {
	tokens []models.TokenMarket
	err    error
}

func (s *stubMarkets) Tokens(ctx context.Context, chain string, addresses []string) ([]models.TokenMarket, error) {
	return s.tokens, s.err
}

type stubLedger struct {
	votes      map[string]int
	increments int
}

func (s *stubLedger) Get(address string) int { return s.votes[address] }

func (s *stubLedger) Increment(address string) (int, error) {
	if s.votes == nil {
		s.votes = make(map[string]int)
	}
	s.increments++
	s.votes[address]++
	return s.votes[address], nil
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func newTestHandler(t *testing.T, profiles *stubProfiles, markets *stubMarkets, ledger *stubLedger, rankings cache.BytesCache, ttl time.Duration) *echo.Echo {
	t.Helper()
	pipeline := usecase.NewRankingPipeline(profiles, markets, ledger, usecase.NewTokenReconciler(nil), nil, nil, 30, 200_000)
	h := NewTokensEchoHandler(testLogger(t), pipeline, ledger, nil, rankings, ttl, "solana")

	e := echo.New()
	h.RegisterRoutes(e)
	return e
}

func vol(v float64) models.TokenVolume { return models.TokenVolume{H24: &v} }

func TestTokensReturnsRankedArray(t *testing.T) {
	profiles := &stubProfiles{profiles: []models.TokenProfile{
		{ChainID: "solana", TokenAddress: "a", TokenName: "Alpha"},
		{ChainID: "solana", TokenAddress: "b", TokenName: "Beta"},
	}}
	markets := &stubMarkets{tokens: []models.TokenMarket{
		{Address: "a", Volume: vol(300_000)},
		{Address: "b", Volume: vol(400_000)},
	}}
	ledger := &stubLedger{votes: map[string]int{"b": 2}}
	e := newTestHandler(t, profiles, markets, ledger, nil, 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tokens-vote", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got []models.TokenRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("expected a bare JSON array: %v", err)
	}
	if len(got) != 2 || got[0].Address != "b" || got[1].Address != "a" {
		t.Fatalf("unexpected ranking %+v", got)
	}
	if got[0].Votes != 2 || got[0].Name != "Beta" {
		t.Fatalf("unexpected first record %+v", got[0])
	}
}

func TestTokensEmptyResultIsEmptyArray(t *testing.T) {
	e := newTestHandler(t, &stubProfiles{}, &stubMarkets{}, &stubLedger{}, nil, 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tokens-vote?chain=ethereum", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected [], got %q", body)
	}
}

func TestTokensPipelineFailureIs500Envelope(t *testing.T) {
	e := newTestHandler(t, &stubProfiles{err: errors.New("upstream down")}, &stubMarkets{}, &stubLedger{}, nil, 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tokens-vote", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}

	var envelope struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if envelope.Error != "API error" {
		t.Fatalf("unexpected error %q", envelope.Error)
	}
	if !strings.Contains(envelope.Details, "upstream down") {
		t.Fatalf("expected details to carry the message, got %q", envelope.Details)
	}
}

func TestTokensServedFromCacheOnRepeat(t *testing.T) {
	profiles := &stubProfiles{profiles: []models.TokenProfile{
		{ChainID: "solana", TokenAddress: "a"},
	}}
	markets := &stubMarkets{tokens: []models.TokenMarket{{Address: "a", Volume: vol(300_000)}}}
	e := newTestHandler(t, profiles, markets, &stubLedger{}, cache.NewTTLCache(), time.Minute)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tokens-vote", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, rec.Code)
		}
	}

	if profiles.calls != 1 {
		t.Fatalf("expected one pipeline run, got %d", profiles.calls)
	}
}

func TestVoteIncrementsAndResponds(t *testing.T) {
	ledger := &stubLedger{}
	e := newTestHandler(t, &stubProfiles{}, &stubMarkets{}, ledger, nil, 0)

	req := httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{"address":"mint1"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.VoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Success || got.Votes != 1 {
		t.Fatalf("unexpected response %+v", got)
	}
	if ledger.Get("mint1") != 1 {
		t.Fatalf("expected ledger count 1, got %d", ledger.Get("mint1"))
	}
}

func TestVoteMissingAddressIs400AndNoMutation(t *testing.T) {
	ledger := &stubLedger{}
	e := newTestHandler(t, &stubProfiles{}, &stubMarkets{}, ledger, nil, 0)

	req := httptest.NewRequest(http.MethodPost, "/vote", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if envelope.Error != "Token address required" {
		t.Fatalf("unexpected error %q", envelope.Error)
	}
	if ledger.increments != 0 {
		t.Fatalf("ledger should not be mutated, got %d increments", ledger.increments)
	}
}

func TestVoteEmptyBodyIs400(t *testing.T) {
	ledger := &stubLedger{}
	e := newTestHandler(t, &stubProfiles{}, &stubMarkets{}, ledger, nil, 0)

	req := httptest.NewRequest(http.MethodPost, "/vote", nil)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if ledger.increments != 0 {
		t.Fatalf("ledger should not be mutated, got %d increments", ledger.increments)
	}
}
