package bettererror

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

var (
	keyOrderID = Key[int64]("orderId")
	keyTenant  = Key[string]("tenant")
	keyTimeout = Key[time.Duration]("timeout")
)

func TestDebugKey_RoundTrip(t *testing.T) {
	t.Parallel()

	err := New("charge failed",
		keyOrderID.Option(1042),
		keyTenant.Option("acme"),
		keyTimeout.Option(3*time.Second),
	)

	if got, ok := keyOrderID.Get(err); !ok || got != 1042 {
		t.Fatalf("orderId = %v, %v", got, ok)
	}
	if got, ok := keyTenant.Get(fmt.Errorf("w: %w", err)); !ok || got != "acme" {
		t.Fatalf("tenant through wrapper = %q, %v", got, ok)
	}
	if got := keyTimeout.MustGet(err); got != 3*time.Second {
		t.Fatalf("timeout = %v", got)
	}
	if keyOrderID.Name() != "orderId" {
		t.Fatalf("Name() = %q", keyOrderID.Name())
	}
}

func TestDebugKey_Misses(t *testing.T) {
	t.Parallel()

	wrongType := New("x", WithDebug("orderId", 1042)) // int, not int64
	if _, ok := keyOrderID.Get(wrongType); ok {
		t.Fatalf("mismatched dynamic type should not match")
	}
	if _, ok := keyTenant.Get(wrongType); ok {
		t.Fatalf("absent key should not match")
	}
	if _, ok := keyTenant.Get(errors.New("plain")); ok {
		t.Fatalf("plain error has no debugs")
	}
	if _, ok := Key[string](KeyErrorID).Get(New("x", WithCustomID("id"))); ok {
		t.Fatalf("injected keys are not raw debugs")
	}
}

func TestDebugKey_MustGetPanics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"no BaseError", errors.New("plain"), "no BaseError in chain"},
		{"missing", New("x"), "debug missing"},
		{"wrong type", New("x", WithDebug("orderId", "1042")), "wrong dynamic type (string)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				if !strings.Contains(fmt.Sprint(r), tc.want) {
					t.Fatalf("panic = %v, want substring %q", r, tc.want)
				}
			}()
			keyOrderID.MustGet(tc.err)
		})
	}
}
