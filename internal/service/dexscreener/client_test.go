package dexscreener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestLatestProfilesParsesLooseShapes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"chainId":"solana","tokenAddress":"mint1","tokenName":"One","icon":"https://img/1.png"},
			{"chainId":"solana","tokenAddress":"mint2","baseToken":{"name":"Two","symbol":"TWO"}}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, 5*time.Second)
	profiles, err := c.LatestProfiles(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].TokenName != "One" || profiles[0].Icon != "https://img/1.png" {
		t.Fatalf("unexpected first profile %+v", profiles[0])
	}
	if profiles[1].BaseToken == nil || profiles[1].BaseToken.Symbol != "TWO" {
		t.Fatalf("unexpected second profile %+v", profiles[1])
	}
}

func TestTokensJoinsAddressesInPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"address":"mint1","name":"One","volume":{"h24":250000},"price":0.5,"fdv":1000000}
		]`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, 5*time.Second)
	tokens, err := c.Tokens(context.Background(), "solana", []string{"mint1", "mint2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/solana/mint1,mint2" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if len(tokens) != 1 {
		t.Fatalf("expected 1 token, got %d", len(tokens))
	}
	if tokens[0].Volume24h() != 250000 {
		t.Fatalf("unexpected volume %v", tokens[0].Volume24h())
	}
	if tokens[0].Price == nil || *tokens[0].Price != 0.5 {
		t.Fatalf("unexpected price %v", tokens[0].Price)
	}
}

func TestTokensEmptyAddressListSkipsCall(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected")
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, 5*time.Second)
	tokens, err := c.Tokens(context.Background(), "solana", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tokens != nil {
		t.Fatalf("expected nil, got %+v", tokens)
	}
}

func TestNon2xxStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, 5*time.Second)
	if _, err := c.LatestProfiles(context.Background()); err == nil {
		t.Fatalf("expected error on 429")
	}
	if _, err := c.Tokens(context.Background(), "solana", []string{"mint1"}); err == nil {
		t.Fatalf("expected error on 429")
	}
}

func TestMalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := New(srv.URL, srv.URL, 5*time.Second)
	if _, err := c.LatestProfiles(context.Background()); err == nil {
		t.Fatalf("expected decode error")
	}
}
