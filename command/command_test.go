package command_test

import (
	"testing"
	"time"

	"github.com/fenwick/cortex/command"
	"github.com/fenwick/cortex/envelope"
)

func TestTerminal(t *testing.T) {
	cases := []struct {
		name string
		cmd  command.Command
		want bool
	}{
		{"pending", command.Command{}, false},
		{"running", command.Command{IsRunning: true}, false},
		{"completed", command.Command{IsCompleted: true}, true},
		{"canceled", command.Command{IsCanceled: true}, true},
		{"failed", command.Command{IsFailed: true}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cmd.Terminal(); got != c.want {
				t.Fatalf("Terminal() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestLeased(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Minute)
	past := now.Add(-time.Minute)

	cases := []struct {
		name string
		cmd  command.Command
		want bool
	}{
		{"not running", command.Command{IsRunning: false, RunExpiresAt: &future}, false},
		{"running, lease live", command.Command{IsRunning: true, RunExpiresAt: &future}, true},
		{"running, lease expired", command.Command{IsRunning: true, RunExpiresAt: &past}, false},
		{"running, no expiry set", command.Command{IsRunning: true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.cmd.Leased(now); got != c.want {
				t.Fatalf("Leased() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestExhausted(t *testing.T) {
	cases := []struct {
		retries int32
		want    bool
	}{
		{retries: 3, want: false},
		{retries: 0, want: false},
		{retries: -1, want: true},
	}
	for _, c := range cases {
		cmd := command.Command{RetriesLeft: c.retries}
		if got := cmd.Exhausted(); got != c.want {
			t.Fatalf("Exhausted() with RetriesLeft=%d = %v, want %v", c.retries, got, c.want)
		}
	}
}

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name string
		cmd  command.Command
		want command.Status
	}{
		{"pending", command.Command{}, command.Pending},
		{"running", command.Command{IsRunning: true}, command.Running},
		{"completed", command.Command{IsCompleted: true}, command.Completed},
		{"canceled", command.Command{IsCanceled: true}, command.Canceled},
		{"failed", command.Command{IsFailed: true}, command.Failed},
		{"completed takes precedence over running", command.Command{IsRunning: true, IsCompleted: true}, command.Completed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := command.StatusOf(&c.cmd); got != c.want {
				t.Fatalf("StatusOf() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestStatusTextRoundTrip(t *testing.T) {
	for _, s := range []command.Status{command.Unknown, command.Pending, command.Running, command.Completed, command.Canceled, command.Failed} {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got command.Status
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != s {
			t.Fatalf("round trip mismatch: got %v, want %v", got, s)
		}
	}
}

func TestParseStatusRejectsUnknownText(t *testing.T) {
	if _, err := command.ParseStatus("Bogus"); err == nil {
		t.Fatal("expected an error for an unrecognized status string")
	}
}

func TestOutcomeTextRoundTrip(t *testing.T) {
	for _, o := range []command.Outcome{command.Success, command.Cancelled, command.Failed, command.NotFound, command.TimedOut} {
		text, err := o.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got command.Outcome
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != o {
			t.Fatalf("round trip mismatch: got %v, want %v", got, o)
		}
	}
}

func TestOutcomeTerminatesVia(t *testing.T) {
	cases := []struct {
		outcome command.Outcome
		want    string
	}{
		{command.Success, "complete"},
		{command.Cancelled, "cancel"},
		{command.Failed, "fail"},
		{command.NotFound, "fail"},
		{command.TimedOut, "fail"},
	}
	for _, c := range cases {
		if got := c.outcome.TerminatesVia(); got != c.want {
			t.Fatalf("TerminatesVia() for %v = %q, want %q", c.outcome, got, c.want)
		}
	}
}

func TestCommandEmbedsEnvelope(t *testing.T) {
	input := "payload"
	env := envelope.NewEnvelope("send_email", "default", &input)
	cmd := command.Command{Envelope: *env}
	if cmd.Name != "send_email" || cmd.Target != "default" || cmd.Input != &input {
		t.Fatal("expected Command to expose Envelope fields directly via embedding")
	}
}
