package providers_test

import (
	"context"
	"reflect"
	"testing"

	"github.com/dropDatabas3/learnhub/internal/providers"
)

type fakeProvider struct{ name string }

func (f fakeProvider) Name() string            { return f.name }
func (f fakeProvider) AuthURL(s string) string { return "http://auth/" + f.name + "?state=" + s }
func (f fakeProvider) UserData(context.Context, string) (*providers.Profile, error) {
	return &providers.Profile{ID: "1", Provider: f.name}, nil
}

func TestRegistry_GetAndNames(t *testing.T) {
	r := providers.NewRegistry(
		fakeProvider{name: "github"},
		fakeProvider{name: "google"},
	)

	p, ok := r.Get("github")
	if !ok || p.Name() != "github" {
		t.Fatalf("get github: ok=%v", ok)
	}
	if _, ok := r.Get("facebook"); ok {
		t.Fatal("facebook should not be registered")
	}
	if got := r.Names(); !reflect.DeepEqual(got, []string{"github", "google"}) {
		t.Fatalf("names: %v", got)
	}
}

func TestRegistry_DuplicateNameLastWins(t *testing.T) {
	first := fakeProvider{name: "github"}
	second := fakeProvider{name: "github"}

	r := providers.NewRegistry(first, second)

	if got := len(r.Names()); got != 1 {
		t.Fatalf("expected 1 name, got %d", got)
	}
}

func TestRegistry_Empty(t *testing.T) {
	r := providers.NewRegistry()
	if _, ok := r.Get("github"); ok {
		t.Fatal("empty registry must not resolve anything")
	}
	if got := r.Names(); len(got) != 0 {
		t.Fatalf("names: %v", got)
	}
}
