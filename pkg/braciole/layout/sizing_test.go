package layout

import (
	"math"
	"strings"
	"testing"
)

// fakeMeasurer gives every rune a fixed width per style so expected values
// can be computed by hand.
type fakeMeasurer struct {
	charW map[TextStyle]float64
	lineH map[TextStyle]float64
}

func newFakeMeasurer() *fakeMeasurer {
	return &fakeMeasurer{
		charW: map[TextStyle]float64{StyleTitle: 10, StyleStatus: 8, StyleDetail: 7},
		lineH: map[TextStyle]float64{StyleTitle: 18, StyleStatus: 14, StyleDetail: 14},
	}
}

func (f *fakeMeasurer) TextWidth(style TextStyle, text string) float64 {
	return f.charW[style] * float64(len([]rune(text)))
}

func (f *fakeMeasurer) LineHeight(style TextStyle) float64 {
	return f.lineH[style]
}

func TestItemWidth(t *testing.T) {
	m := newFakeMeasurer()

	tests := []struct {
		name string
		item ItemContent
		want float64
	}{
		{
			name: "title only",
			item: ItemContent{Title: "Open"},
			want: 24 + 4*10 + 4,
		},
		{
			name: "badge adds slot and gap",
			item: ItemContent{Title: "Open", HasBadge: true},
			want: 24 + 4*10 + 4 + 36 + 4,
		},
		{
			name: "status adds width and gap",
			item: ItemContent{Title: "Open", Status: "ok"},
			want: 24 + 4*10 + 4 + 2*8 + 4,
		},
		{
			name: "all elements",
			item: ItemContent{Title: "Open", HasBadge: true, Status: "ok", Detail: "12 KB"},
			want: 24 + 4*10 + 4 + 36 + 4 + 2*8 + 4 + 5*7 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemWidth(tt.item, m); got != tt.want {
				t.Errorf("ItemWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuWidthAutoClamp(t *testing.T) {
	m := newFakeMeasurer()

	tests := []struct {
		name  string
		items []ItemContent
		mode  WidthMode
		want  float64
	}{
		{
			name:  "short content hits floor",
			items: []ItemContent{{Title: "Hi"}},
			mode:  AutoWidth(0),
			want:  MinAutoWidth,
		},
		{
			name:  "caller floor above default",
			items: []ItemContent{{Title: "Hi"}},
			mode:  AutoWidth(260),
			want:  260,
		},
		{
			name:  "long content hits cap",
			items: []ItemContent{{Title: strings.Repeat("w", 60)}},
			mode:  AutoWidth(0),
			want:  MaxAutoWidth,
		},
		{
			name:  "floor above cap wins",
			items: []ItemContent{{Title: "Hi"}},
			mode:  AutoWidth(400),
			want:  400,
		},
		{
			name:  "content inside range is used",
			items: []ItemContent{{Title: strings.Repeat("w", 25)}},
			mode:  AutoWidth(0),
			want:  24 + 250 + 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MenuWidth(tt.items, m, tt.mode); got != tt.want {
				t.Errorf("MenuWidth = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMenuWidthAutoAlwaysInRange(t *testing.T) {
	m := newFakeMeasurer()

	titles := []string{"", "a", "short", strings.Repeat("x", 20), strings.Repeat("x", 100)}
	for _, minW := range []float64{0, 100, 200, 220, 350} {
		for _, title := range titles {
			items := []ItemContent{{Title: title, HasBadge: true, Status: "s", Detail: "d"}}
			got := MenuWidth(items, m, AutoWidth(minW))

			lo := math.Max(MinAutoWidth, minW)
			if got < lo || got > MaxAutoWidth {
				t.Errorf("MenuWidth(min=%v, title=%q) = %v, want in [%v, %v]",
					minW, title, got, lo, MaxAutoWidth)
			}
		}
	}
}

func TestMenuWidthFixedBypassesClamp(t *testing.T) {
	m := newFakeMeasurer()
	items := []ItemContent{{Title: strings.Repeat("w", 60)}}

	for _, w := range []float64{50, 200, 999} {
		if got := MenuWidth(items, m, FixedWidth(w)); got != w {
			t.Errorf("MenuWidth(Fixed(%v)) = %v", w, got)
		}
	}
}

func TestItemHeight(t *testing.T) {
	m := newFakeMeasurer()

	// 18 content + 24 padding = 42, below the 44 floor.
	if got := ItemHeight(ItemContent{Title: "a"}, m); got != MinItemHeight {
		t.Errorf("ItemHeight = %v, want floor %v", got, MinItemHeight)
	}

	tall := newFakeMeasurer()
	tall.lineH[StyleTitle] = 30
	if got := ItemHeight(ItemContent{Title: "a"}, tall); got != 54 {
		t.Errorf("ItemHeight = %v, want 54", got)
	}
}

func TestDetailColumnWidth(t *testing.T) {
	m := newFakeMeasurer()
	m.charW[StyleDetail] = 7.5

	items := []ItemContent{
		{Title: "a", Detail: "1 KB"},     // 4 * 7.5 = 30
		{Title: "b", Detail: "120 KB"},   // 6 * 7.5 = 45
		{Title: "c"},                     // no detail
		{Title: "d", Detail: "3.2 MB"},   // 45
	}

	if got := DetailColumnWidth(items, m); got != 45 {
		t.Errorf("DetailColumnWidth = %v, want 45", got)
	}

	// Ceil of a fractional maximum.
	m.charW[StyleDetail] = 7.3
	if got := DetailColumnWidth(items, m); got != math.Ceil(6*7.3) {
		t.Errorf("DetailColumnWidth = %v, want %v", got, math.Ceil(6*7.3))
	}

	if got := DetailColumnWidth([]ItemContent{{Title: "x"}}, m); got != 0 {
		t.Errorf("DetailColumnWidth with no details = %v, want 0", got)
	}
}

func TestMeasure(t *testing.T) {
	m := newFakeMeasurer()

	items := []ItemContent{
		{Title: "Open"},
		{Title: "Rename"},
		{Title: "Delete"},
	}
	got := Measure(items, m, AutoWidth(0))

	if len(got.ItemHeights) != 3 {
		t.Fatalf("ItemHeights len = %d", len(got.ItemHeights))
	}
	// Height accumulates item by item, so allow float drift.
	wantHeight := 3*MinItemHeight + 2*SeparatorHeight
	if math.Abs(got.Height-wantHeight) > 1e-9 {
		t.Errorf("Height = %v, want %v", got.Height, wantHeight)
	}
	if got.Width != MinAutoWidth {
		t.Errorf("Width = %v, want %v", got.Width, MinAutoWidth)
	}
}

func TestMeasureEmptyConfiguration(t *testing.T) {
	m := newFakeMeasurer()
	got := Measure(nil, m, AutoWidth(240))

	if got.Height != 0 {
		t.Errorf("Height = %v, want 0", got.Height)
	}
	if got.Width != 240 {
		t.Errorf("Width = %v, want floor 240", got.Width)
	}
}
