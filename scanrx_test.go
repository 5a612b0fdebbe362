package scanrx

import (
	"testing"
)

func TestCompileAndMatchString(t *testing.T) {
	re, err := Compile(`\d{3}-\d{4}`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !re.MatchString("call 555-1234 now") {
		t.Fatal("expected a match")
	}
	if re.MatchString("no digits here") {
		t.Fatal("expected no match")
	}
}

func TestCompileInvalidPattern(t *testing.T) {
	_, err := Compile(`a{3,1}`)
	if err == nil {
		t.Fatal("expected an error for max < min")
	}
	ce, ok := err.(*CompileError)
	if !ok {
		t.Fatalf("expected *CompileError, got %T", err)
	}
	if ce.Pattern != `a{3,1}` {
		t.Fatalf("CompileError.Pattern = %q", ce.Pattern)
	}
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected MustCompile to panic")
		}
	}()
	MustCompile(`(unclosed`)
}

func TestFindAllStringRanges(t *testing.T) {
	re := MustCompile(`a`)
	got := re.FindAllStringRanges("banana")
	want := [][2]int{{1, 2}, {3, 4}, {5, 6}}
	if len(got) != len(want) {
		t.Fatalf("got %d ranges, want %d: %v", len(got), len(want), got)
	}
	for i, r := range got {
		if r.Start != want[i][0] || r.End != want[i][1] {
			t.Fatalf("range %d = %v, want %v", i, r, want[i])
		}
	}
}

func TestFindAllStrings(t *testing.T) {
	re := MustCompile(`a`)
	got := re.FindAllStrings("banana")
	want := []string{"a", "a", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFindAllStringsNoMatch(t *testing.T) {
	re := MustCompile(`zzz`)
	if got := re.FindAllStrings("abc"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestBackreferenceScenario(t *testing.T) {
	re := MustCompile(`(cat|dog) and \1`)
	if !re.MatchString("cat and cat") {
		t.Fatal("expected a match")
	}
	if re.MatchString("cat and dog") {
		t.Fatal("expected no match")
	}
}

func TestPrefilterDoesNotChangeResults(t *testing.T) {
	pattern := `hello[0-9]+`
	subject := "say hello123 to hello999 too"

	withPrefilter, err := CompileWithConfig(pattern, DefaultConfig())
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	noPrefilterCfg := DefaultConfig()
	noPrefilterCfg.EnablePrefilter = false
	withoutPrefilter, err := CompileWithConfig(pattern, noPrefilterCfg)
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}

	a := withPrefilter.FindAllStrings(subject)
	b := withoutPrefilter.FindAllStrings(subject)
	if len(a) != len(b) {
		t.Fatalf("prefilter changed match count: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("prefilter changed match %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestString(t *testing.T) {
	re := MustCompile(`abc`)
	if re.String() != "abc" {
		t.Fatalf("String() = %q, want \"abc\"", re.String())
	}
}
