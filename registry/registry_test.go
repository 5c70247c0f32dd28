package registry_test

import (
	"context"
	"testing"

	"github.com/fenwick/cortex/registry"
)

func TestMapRegistryLookup(t *testing.T) {
	r := registry.NewMapRegistry()
	handler := func(ctx context.Context, input *string) (*string, error) { return nil, nil }
	r.Register("send_email", registry.Definition{Handler: handler})

	def, ok := r.Lookup("send_email")
	if !ok {
		t.Fatal("expected definition to be found")
	}
	if def.Handler == nil {
		t.Fatal("expected handler to be set")
	}

	if _, ok := r.Lookup("missing"); ok {
		t.Fatal("expected missing lookup to report not found")
	}
}

type ProcessOrderCommand struct{}

func TestMapRegistryRegisterFor(t *testing.T) {
	r := registry.NewMapRegistry()
	r.RegisterFor(ProcessOrderCommand{}, "", registry.Definition{
		Handler: func(ctx context.Context, input *string) (*string, error) { return nil, nil },
	})
	if _, ok := r.Lookup("process_order"); !ok {
		t.Fatal("expected RegisterFor to register under the resolved name")
	}
}

func TestChainFailureAsCancellationDefaultsWhenEmpty(t *testing.T) {
	chain := registry.Chain{
		OnFailure: []registry.Successor{{Name: "alert_ops"}},
	}
	result := chain.FailureAsCancellation()
	if len(result.OnCancellation) != 1 || result.OnCancellation[0].Name != "alert_ops" {
		t.Fatalf("expected OnCancellation to default to OnFailure, got %+v", result.OnCancellation)
	}
}

func TestChainFailureAsCancellationPreservesExplicit(t *testing.T) {
	chain := registry.Chain{
		OnFailure:      []registry.Successor{{Name: "alert_ops"}},
		OnCancellation: []registry.Successor{{Name: "release_resource"}},
	}
	result := chain.FailureAsCancellation()
	if len(result.OnCancellation) != 1 || result.OnCancellation[0].Name != "release_resource" {
		t.Fatalf("expected explicit OnCancellation to be preserved, got %+v", result.OnCancellation)
	}
}
