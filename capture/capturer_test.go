package capture

import "testing"

func TestCapturerBasic(t *testing.T) {
	c := New()
	c.StartCapture(1)
	c.Append("ca")
	c.Append("t")
	c.EndCapture(1)

	got, ok := c.Get(1)
	if !ok || got != "cat" {
		t.Fatalf("Get(1) = (%q,%v), want (cat,true)", got, ok)
	}
	if c.OpenDepth() != 0 {
		t.Fatalf("expected no open groups, got %d", c.OpenDepth())
	}
}

func TestCapturerNestedGroups(t *testing.T) {
	c := New()
	c.StartCapture(1)
	c.Append("a")
	c.StartCapture(2)
	c.Append("b")
	c.EndCapture(2)
	c.Append("c")
	c.EndCapture(1)

	outer, _ := c.Get(1)
	inner, _ := c.Get(2)
	if outer != "abc" {
		t.Fatalf("outer = %q, want abc", outer)
	}
	if inner != "b" {
		t.Fatalf("inner = %q, want b", inner)
	}
}

func TestCapturerCloneIsolation(t *testing.T) {
	c := New()
	c.StartCapture(1)
	c.Append("a")

	clone := c.Clone()
	clone.Append("b")
	clone.EndCapture(1)

	c.Append("x")
	c.EndCapture(1)

	orig, _ := c.Get(1)
	cloned, _ := clone.Get(1)
	if orig != "ax" {
		t.Fatalf("original mutated via clone: got %q", orig)
	}
	if cloned != "ab" {
		t.Fatalf("clone = %q, want ab", cloned)
	}
}

func TestCapturerDuplicateStartPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on duplicate StartCapture")
		}
	}()
	c := New()
	c.StartCapture(1)
	c.StartCapture(1)
}

func TestCapturerMismatchedEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched EndCapture")
		}
	}()
	c := New()
	c.StartCapture(1)
	c.EndCapture(2)
}
