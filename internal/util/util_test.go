package util_test

import (
	"testing"

	"github.com/ja-he/blocknote/internal/util"
)

func TestTruncateAt(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{"regular string truncation", "aaaaabbbbbcccccddddd", 15, "aaaaabbbbbcc..."},
		{"no truncation needed", "aaaaabbbbbcccccddddd", 40, "aaaaabbbbbcccccddddd"},
		{"just barely no truncation needed", "aaaaabbbbbcccccddddd", 20, "aaaaabbbbbcccccddddd"},
		{"just barely truncation needed", "aaaaabbbbbcccccddddd", 19, "aaaaabbbbbcccccd..."},
		{"wide runes count double", "日本語日本語", 7, "日本..."},
		{"too narrow for ellipsis", "abcdef", 2, "ab"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			result := util.TruncateAt(tc.input, tc.width)
			if result != tc.expected {
				t.Errorf("expected '%s', got '%s'", tc.expected, result)
			}
		})
	}
}

func TestPadCenter(t *testing.T) {
	if result := util.PadCenter("ab", 6, '-'); result != "--ab--" {
		t.Errorf("unexpected padding: '%s'", result)
	}
	if result := util.PadCenter("ab", 5, ' '); result != " ab  " {
		t.Errorf("unexpected uneven padding: '%s'", result)
	}
	if result := util.PadCenter("abcdef", 3, ' '); result != "abcdef" {
		t.Errorf("too wide string changed: '%s'", result)
	}
}

func TestRectContains(t *testing.T) {
	r := util.NewRect(2, 3, 4, 5)
	for _, p := range [][2]int{{2, 3}, {5, 7}, {3, 4}} {
		if !r.Contains(p[0], p[1]) {
			t.Errorf("%v not contained in %v", p, r)
		}
	}
	for _, p := range [][2]int{{1, 3}, {6, 3}, {2, 8}, {2, 2}} {
		if r.Contains(p[0], p[1]) {
			t.Errorf("%v contained in %v", p, r)
		}
	}
}

func TestMetricsHandler(t *testing.T) {
	h := util.MetricsHandler{}
	if h.Avg() != 0 {
		t.Error("empty handler has nonzero average")
	}
	h.Add(10)
	h.Add(20)
	if h.GetLast() != 20 {
		t.Error("unexpected last value:", h.GetLast())
	}
	if h.Avg() != 15 {
		t.Error("average not over added values:", h.Avg())
	}

	t.Run("window", func(t *testing.T) {
		h := util.MetricsHandler{}
		for i := 0; i < 1000; i++ {
			h.Add(1000)
		}
		for i := 0; i < 256; i++ {
			h.Add(2)
		}
		if h.Avg() != 2 {
			t.Error("old values not dropped from average:", h.Avg())
		}
		if h.GetLast() != 2 {
			t.Error("unexpected last value:", h.GetLast())
		}
	})
}

func TestRectIntersect(t *testing.T) {
	outer := util.NewRect(2, 2, 10, 5)
	for _, tc := range []struct {
		name     string
		rect     util.Rect
		expected util.Rect
	}{
		{"inside", util.NewRect(3, 3, 2, 2), util.NewRect(3, 3, 2, 2)},
		{"overlapping top left", util.NewRect(0, 0, 5, 5), util.NewRect(2, 2, 3, 3)},
		{"overlapping bottom right", util.NewRect(10, 5, 10, 10), util.NewRect(10, 5, 2, 2)},
		{"covering", util.NewRect(0, 0, 50, 50), outer},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.rect.Intersect(outer); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
	t.Run("disjoint has no area", func(t *testing.T) {
		got := util.NewRect(20, 20, 3, 3).Intersect(outer)
		if got.W != 0 || got.H != 0 {
			t.Error("unexpected intersection:", got)
		}
	})
}
