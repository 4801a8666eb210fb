package maybe

import (
	"errors"
	"testing"
)

func TestPresent_Get(t *testing.T) {
	t.Parallel()
	m := Present(5)
	v, ok := m.Get()
	if !ok || v != 5 {
		t.Fatalf("expected (5, true), got (%v, %v)", v, ok)
	}
	if !m.IsPresent() || m.IsAbsent() {
		t.Fatalf("expected present, got present=%v absent=%v", m.IsPresent(), m.IsAbsent())
	}
}

func TestAbsent_Get(t *testing.T) {
	t.Parallel()
	m := Absent[int]()
	v, ok := m.Get()
	if ok || v != 0 {
		t.Fatalf("expected (0, false), got (%v, %v)", v, ok)
	}
	if m.IsPresent() || !m.IsAbsent() {
		t.Fatalf("expected absent, got present=%v absent=%v", m.IsPresent(), m.IsAbsent())
	}
}

func TestOf(t *testing.T) {
	t.Parallel()

	if m := Of(7, true); !m.IsPresent() || m.Value() != 7 {
		t.Fatalf("expected present 7, got present=%v val=%v", m.IsPresent(), m.Value())
	}
	if m := Of(7, false); m.IsPresent() {
		t.Fatalf("expected absent, got present with %v", m.Value())
	}

	// zero values are still present values
	if m := Of("", true); !m.IsPresent() {
		t.Fatalf("expected present empty string, got absent")
	}
}

func TestTry(t *testing.T) {
	t.Parallel()

	if m := Try(3, nil); !m.IsPresent() || m.Value() != 3 {
		t.Fatalf("expected present 3, got present=%v val=%v", m.IsPresent(), m.Value())
	}

	// the error payload is discarded, only absence remains
	if m := Try(3, errors.New("lookup failed")); m.IsPresent() {
		t.Fatalf("expected absent on error, got present with %v", m.Value())
	}
}

func TestOfPtr(t *testing.T) {
	t.Parallel()

	if m := OfPtr(Ptr("hi")); !m.IsPresent() || m.Value() != "hi" {
		t.Fatalf("expected present 'hi', got present=%v val=%q", m.IsPresent(), m.Value())
	}

	var p *string
	if m := OfPtr(p); m.IsPresent() {
		t.Fatalf("expected absent for nil pointer, got present")
	}
}

func TestOfNillable(t *testing.T) {
	t.Parallel()

	var nilMap map[string]int
	if m := OfNillable(nilMap); m.IsPresent() {
		t.Fatalf("expected absent for nil map, got present")
	}

	if m := OfNillable(map[string]int{"a": 1}); !m.IsPresent() {
		t.Fatalf("expected present for non-nil map, got absent")
	}

	// non-nilable kinds are always present
	if m := OfNillable(0); !m.IsPresent() {
		t.Fatalf("expected present for int zero, got absent")
	}
}

func TestAbsentFrom_KeepsProvenance(t *testing.T) {
	t.Parallel()

	src := Present("origin")
	out := AbsentFrom[string, int](src)

	if out.IsPresent() {
		t.Fatalf("expected absent, got present with %v", out.Value())
	}
	if out.Id() != src.Id() {
		t.Fatalf("expected id %v carried over, got %v", src.Id(), out.Id())
	}
	if !out.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("expected createdAt %v carried over, got %v", src.CreatedAt(), out.CreatedAt())
	}
}

func TestValueOr(t *testing.T) {
	t.Parallel()

	if got := Present("found").ValueOr("Hello"); got != "found" {
		t.Fatalf("expected 'found', got %q", got)
	}
	if got := Absent[string]().ValueOr("Hello"); got != "Hello" {
		t.Fatalf("expected 'Hello', got %q", got)
	}
}

func TestValueOrElse(t *testing.T) {
	t.Parallel()

	// fallback is not evaluated when present
	called := false
	got := Present(1).ValueOrElse(func() int {
		called = true
		return -1
	})
	if got != 1 || called {
		t.Fatalf("expected 1 with no fallback call, got %v called=%v", got, called)
	}

	got2 := Absent[int]().ValueOrElse(func() int { return -1 })
	if got2 != -1 {
		t.Fatalf("expected -1, got %v", got2)
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	if s := Present(42).String(); s != "Present(42)" {
		t.Fatalf("expected 'Present(42)', got %q", s)
	}
	if s := Absent[int]().String(); s != "Absent" {
		t.Fatalf("expected 'Absent', got %q", s)
	}
}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var zero Maybe[int]
	if !zero.IsEmpty() {
		t.Fatalf("expected zero Maybe to be empty")
	}
	if Absent[int]().IsEmpty() {
		t.Fatalf("expected constructed Absent to be non-empty")
	}
	if Present(1).IsEmpty() {
		t.Fatalf("expected Present to be non-empty")
	}
}

func TestIds_UniquePerConstruction(t *testing.T) {
	t.Parallel()

	a := Present(1)
	b := Present(1)
	if a.Id() == b.Id() {
		t.Fatalf("expected distinct ids, got %v twice", a.Id())
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	var m map[string]int
	var s []int
	var f func()
	var c chan int

	for i, v := range []interface{}{nil, p, m, s, f, c} {
		if !IsNil(v) {
			t.Fatalf("case %d: expected nil, got non-nil", i)
		}
	}

	if IsNil(0) || IsNil("") || IsNil(struct{}{}) {
		t.Fatalf("expected non-nilable values to be non-nil")
	}
	if IsNil(Ptr(1)) {
		t.Fatalf("expected non-nil pointer to be non-nil")
	}
}
