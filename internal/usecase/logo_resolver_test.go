package usecase

import (
	"context"
	"testing"
)

type fakeProvider struct {
	name   string
	url    string
	ok     bool
	called int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Logo(ctx context.Context, address string) (string, bool) {
	f.called++
	return f.url, f.ok
}

func TestResolveFirstProviderShortCircuits(t *testing.T) {
	first := &fakeProvider{name: "first", url: "https://img/1.png", ok: true}
	second := &fakeProvider{name: "second", url: "https://img/2.png", ok: true}
	r := NewLogoResolver(nil, nil, first, second)

	url, ok := r.Resolve(context.Background(), "mint1")
	if !ok || url != "https://img/1.png" {
		t.Fatalf("expected first provider result, got %q ok=%v", url, ok)
	}
	if second.called != 0 {
		t.Fatalf("second provider should not be called, got %d calls", second.called)
	}
}

func TestResolveFallsThroughToSecondProvider(t *testing.T) {
	first := &fakeProvider{name: "first"}
	second := &fakeProvider{name: "second", url: "https://img/2.png", ok: true}
	r := NewLogoResolver(nil, nil, first, second)

	url, ok := r.Resolve(context.Background(), "mint1")
	if !ok || url != "https://img/2.png" {
		t.Fatalf("expected second provider result, got %q ok=%v", url, ok)
	}
	if first.called != 1 {
		t.Fatalf("expected first provider to be tried, got %d calls", first.called)
	}
}

func TestResolveAllProvidersMiss(t *testing.T) {
	first := &fakeProvider{name: "first"}
	second := &fakeProvider{name: "second"}
	r := NewLogoResolver(nil, nil, first, second)

	url, ok := r.Resolve(context.Background(), "mint1")
	if ok || url != "" {
		t.Fatalf("expected no result, got %q ok=%v", url, ok)
	}
}

func TestResolveIgnoresEmptyURLHit(t *testing.T) {
	// a provider claiming success with an empty URL is still a miss
	first := &fakeProvider{name: "first", url: "", ok: true}
	second := &fakeProvider{name: "second", url: "https://img/2.png", ok: true}
	r := NewLogoResolver(nil, nil, first, second)

	url, ok := r.Resolve(context.Background(), "mint1")
	if !ok || url != "https://img/2.png" {
		t.Fatalf("expected second provider result, got %q ok=%v", url, ok)
	}
}
