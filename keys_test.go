package bettererror

import "testing"

func TestIsReserved(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"errorId":                true,
		"originalError":          true,
		"stack":                  true,
		"stack1":                 true,
		"stack42":                true,
		"originalError - path":   true,
		"originalError - stack3": true,
		"stacks":                 false,
		"stack1a":                false,
		"user":                   false,
		"originalError-path":     false,
		"":                       false,
		"ErrorId":                false,
	}
	for key, want := range cases {
		if got := IsReserved(key); got != want {
			t.Fatalf("IsReserved(%q) = %v, want %v", key, got, want)
		}
	}
}

func TestOriginalErrorPrefix(t *testing.T) {
	t.Parallel()

	if OriginalErrorPrefix != "originalError - " {
		t.Fatalf("prefix = %q", OriginalErrorPrefix)
	}
}
