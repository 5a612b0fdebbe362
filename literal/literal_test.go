package literal

import "testing"

func TestLiteralMatch(t *testing.T) {
	tests := []struct {
		name string
		lit  Literal
		r    rune
		want bool
	}{
		{"char match", Char('a'), 'a', true},
		{"char mismatch", Char('a'), 'b', false},
		{"range inside", NewRange('a', 'z'), 'm', true},
		{"range boundary lo", NewRange('a', 'z'), 'a', true},
		{"range boundary hi", NewRange('a', 'z'), 'z', true},
		{"range outside", NewRange('a', 'z'), 'A', false},
		{"digit match", NumericLit(), '5', true},
		{"digit mismatch", NumericLit(), 'x', false},
		{"word letter", AlphanumericLit(), 'Q', true},
		{"word underscore", AlphanumericLit(), '_', true},
		{"word digit", AlphanumericLit(), '7', true},
		{"word mismatch", AlphanumericLit(), '-', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lit.Match(tt.r); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsDigitIsWord(t *testing.T) {
	if !IsDigit('0') || !IsDigit('9') || IsDigit('a') {
		t.Fatal("IsDigit boundary check failed")
	}
	if !IsWord('_') || !IsWord('Z') || !IsWord('3') || IsWord('!') {
		t.Fatal("IsWord boundary check failed")
	}
}
