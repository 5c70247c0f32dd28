package resolver_test

import (
	"testing"

	"github.com/fenwick/cortex/resolver"
)

type SendEmailCommand struct{}
type ProcessOrder struct{}
type HTTPFetchCommand struct{}

func TestResolveConvention(t *testing.T) {
	cases := []struct {
		name string
		v    any
		want string
	}{
		{"strips trailing Command and snake_cases", SendEmailCommand{}, "send_email"},
		{"no suffix to strip", ProcessOrder{}, "process_order"},
		{"consecutive uppercase letters each get a boundary", HTTPFetchCommand{}, "h_t_t_p_fetch"},
		{"pointer receiver resolves the same as value", &SendEmailCommand{}, "send_email"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := resolver.Resolve(c.v, ""); got != c.want {
				t.Fatalf("Resolve(%T, \"\") = %q, want %q", c.v, got, c.want)
			}
		})
	}
}

func TestResolveOverride(t *testing.T) {
	if got := resolver.Resolve(SendEmailCommand{}, "custom_name"); got != "custom_name" {
		t.Fatalf("expected override to win verbatim, got %q", got)
	}
}

func TestResolveStringToken(t *testing.T) {
	if got := resolver.Resolve("ApiCallCommand", ""); got != "api_call" {
		t.Fatalf("Resolve(string) = %q, want %q", got, "api_call")
	}
}

func TestResolveIsCachedAndStable(t *testing.T) {
	first := resolver.Resolve(ProcessOrder{}, "")
	second := resolver.Resolve(ProcessOrder{}, "")
	if first != second {
		t.Fatalf("expected stable resolution, got %q then %q", first, second)
	}
}
