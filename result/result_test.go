package result_test

import (
	"errors"
	"testing"

	"github.com/fpkit/dispatch/maybe"
	. "github.com/fpkit/dispatch/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultWithDefault(t *testing.T) {
	if x := Ok(7).WithDefault(100); x != 7 {
		t.Logf("x = %d", x)
		t.Error("expected Ok(7) to have value 7, isn't")
	}
	if y := Err[int](errors.New("not ok")).WithDefault(100); y != 100 {
		t.Logf("y = %d", y)
		t.Error("expected Err to default to 100, isn't")
	}
}

func TestResultToMaybe(t *testing.T) {
	m := ToMaybe(Ok("here"))
	if m.WithDefault("?") != "here" {
		t.Error("expected ToMaybe(Ok) to be Just, isn't")
	}
	n := ToMaybe(Err[string](errors.New("gone")))
	if !n.IsNothing() {
		t.Error("expected ToMaybe(Err) to be Nothing, isn't")
	}
}

func TestResultFromMaybe(t *testing.T) {
	missing := errors.New("missing")
	r := FromMaybe(maybe.Just(7), missing)
	if !r.IsOk() || r.WithDefault(0) != 7 {
		t.Error("expected FromMaybe(Just 7) to be Ok(7), isn't")
	}
	s := FromMaybe(maybe.Nothing[int](), missing)
	var v int
	var e error
	switch m := s.Match(); m {
	case m.Ok(&v):
		t.Fatalf("expected FromMaybe(Nothing) to be Err, is Ok(%d)", v)
	case m.Err(&e):
	}
	if e != missing {
		t.Errorf("expected error to be %v, is %v", missing, e)
	}
}
