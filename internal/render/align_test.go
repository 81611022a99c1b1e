package render

import "testing"

func TestMeasure(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"日本", 4},
	}
	for _, tt := range tests {
		if got := Measure(tt.in); got != tt.want {
			t.Errorf("Measure(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"john@example.com", 20, "john@example.com"},
		{"john@example.com", 8, "john@ex…"},
		{"anything", 0, ""},
		{"日本語", 5, "日本…"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestFit(t *testing.T) {
	if got := Fit("Bob", 6); got != "Bob   " {
		t.Errorf("Fit() = %q", got)
	}
	if got := Fit("Jane Smith", 6); Measure(got) != 6 {
		t.Errorf("Fit() width = %d, want 6", Measure(got))
	}
}

func TestTailFit(t *testing.T) {
	if got := TailFit("abc", 5); got != "abc  " {
		t.Errorf("TailFit(short) = %q", got)
	}
	if got := TailFit("abcdefgh", 5); got != "…efgh" {
		t.Errorf("TailFit(long) = %q, want %q", got, "…efgh")
	}
	if got := TailFit("abc", 0); got != "" {
		t.Errorf("TailFit(width 0) = %q", got)
	}
}
