package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/slotvec/result"
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

func TestResultZeroIsOk(t *testing.T) {
	zero := Ok(0)
	if !zero.IsOk() {
		t.Error("expected Ok(0) to be a success")
	}
	n, err := zero.Get()
	if n != 0 || err != nil {
		t.Errorf("expected (0, nil), got (%d, %v)", n, err)
	}
}

func TestResultFromAndDefault(t *testing.T) {
	bad := From(strconv.Atoi("x"))
	if bad.IsOk() {
		t.Fatal("expected Atoi(\"x\") to fail")
	}
	if d := bad.WithDefault(-1); d != -1 {
		t.Errorf("expected default -1, got %d", d)
	}
	good := From(strconv.Atoi("42"))
	if d := good.WithDefault(-1); d != 42 {
		t.Errorf("expected 42, got %d", d)
	}
}

func TestResultMap(t *testing.T) {
	r := Map(strconv.Itoa, Ok(5))
	if s, _ := r.Get(); s != "5" {
		t.Errorf("expected \"5\", got %q", s)
	}
	failure := errors.New("boom")
	r = Map(strconv.Itoa, Err[int](failure))
	if _, err := r.Get(); !errors.Is(err, failure) {
		t.Errorf("expected failure to pass through Map, got %v", err)
	}
}
