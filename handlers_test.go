package dispatch_test

import (
	"fmt"
	"testing"

	"github.com/fpkit/dispatch"
)

func TestConstantly(t *testing.T) {
	seven := dispatch.Constantly[string](7)
	if seven("anything") != 7 {
		t.Logf("constantly = %v", seven("anything"))
		t.Error("expected constant handler to be integer 7")
	}
	if seven("other", 1, 2, 3) != 7 {
		t.Error("expected constant handler to ignore extra arguments, doesn't")
	}
}

func TestOf(t *testing.T) {
	h := dispatch.Of(func(n int) string {
		return fmt.Sprintf("%03d", n)
	})
	if s := h(7); s != "007" {
		t.Logf("h(7) = %q", s)
		t.Error("expected lifted handler to format choice 7 as 007")
	}
	if s := h(7, "ignored"); s != "007" {
		t.Error("expected lifted handler to ignore extra arguments, doesn't")
	}
}

func TestThunk(t *testing.T) {
	calls := 0
	h := dispatch.Thunk[string](func() int {
		calls++
		return 42
	})
	if n := h("whatever"); n != 42 {
		t.Logf("h = %v", n)
		t.Error("expected thunk handler to return 42")
	}
	if calls != 1 {
		t.Errorf("expected thunk to have been called once, was %d times", calls)
	}
}
