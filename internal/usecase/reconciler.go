package usecase

import (
	"context"

	"VotePulse/internal/domain/models"
)

// logoLookup is the last-resort logo resolution the reconciler delegates to
// when no direct field carries a logo.
type logoLookup interface {
	Resolve(ctx context.Context, address string) (string, bool)
}

// TokenReconciler merges a market record and a profile record for the same
// token into one canonical TokenRecord. Each field is resolved through an
// ordered accessor list, first non-empty wins: the fresher batch market
// source is trusted first, then the staler discovery profile, and external
// logo resolution is only paid for when everything else came up empty.
type TokenReconciler struct {
	logos logoLookup
}

// NewTokenReconciler creates a reconciler with the given logo fallback.
func NewTokenReconciler(logos logoLookup) *TokenReconciler {
	return &TokenReconciler{logos: logos}
}

// Reconcile builds the canonical record. The market address keys the record
// and is assumed present; an all-zero profile stands in for a missing one.
// Vote count overlay is the pipeline's job, not the reconciler's.
func (t *TokenReconciler) Reconcile(ctx context.Context, market models.TokenMarket, profile models.TokenProfile) models.TokenRecord {
	rec := models.TokenRecord{
		Address:   market.Address,
		Name:      firstNonEmpty(nameSources(&market, &profile)),
		Symbol:    firstNonEmpty(symbolSources(&market, &profile)),
		LogoURI:   firstNonEmpty(logoSources(&market, &profile)),
		Volume24h: market.Volume24h(),
		Price:     market.Price,
		MarketCap: market.FDV,
	}

	if rec.LogoURI == "" && t.logos != nil {
		if url, ok := t.logos.Resolve(ctx, market.Address); ok {
			rec.LogoURI = url
		}
	}

	return rec
}

func nameSources(m *models.TokenMarket, p *models.TokenProfile) []func() string {
	return []func() string{
		func() string { return m.Name },
		func() string { return p.Name },
		func() string { return p.TokenName },
		func() string { return p.BaseTokenName },
		func() string { return baseName(p.BaseToken) },
		func() string { return baseName(m.BaseToken) },
	}
}

func symbolSources(m *models.TokenMarket, p *models.TokenProfile) []func() string {
	return []func() string{
		func() string { return m.Symbol },
		func() string { return p.Symbol },
		func() string { return p.TokenSymbol },
		func() string { return p.BaseTokenSymbol },
		func() string { return baseSymbol(p.BaseToken) },
		func() string { return baseSymbol(m.BaseToken) },
	}
}

func logoSources(m *models.TokenMarket, p *models.TokenProfile) []func() string {
	return []func() string{
		func() string { return m.Icon },
		func() string { return p.Icon },
		func() string { return p.LogoURI },
		func() string { return p.Logo },
		func() string { return baseIcon(p.BaseToken) },
		func() string { return baseIcon(m.BaseToken) },
	}
}

func firstNonEmpty(sources []func() string) string {
	for _, s := range sources {
		if v := s(); v != "" {
			return v
		}
	}
	return ""
}

func baseName(b *models.BaseToken) string {
	if b == nil {
		return ""
	}
	return b.Name
}

func baseSymbol(b *models.BaseToken) string {
	if b == nil {
		return ""
	}
	return b.Symbol
}

func baseIcon(b *models.BaseToken) string {
	if b == nil {
		return ""
	}
	return b.Icon
}
