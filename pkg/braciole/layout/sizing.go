package layout

import "math"

// TextStyle names one of the three fixed styles the menu renders with.
type TextStyle int

const (
	StyleTitle TextStyle = iota
	StyleStatus
	StyleDetail
)

// TextMeasurer reports rendered text dimensions for a style. The production
// implementation wraps the loaded TTF fonts; tests supply a fake.
type TextMeasurer interface {
	TextWidth(style TextStyle, text string) float64
	LineHeight(style TextStyle) float64
}

// ItemContent is the layout-relevant view of a menu item.
type ItemContent struct {
	HasBadge bool
	Title    string
	Status   string
	Detail   string
}

const (
	ItemPaddingX   = 24.0
	BadgeSlotWidth = 36.0
	ElementGap     = 4.0

	MinAutoWidth = 200.0
	MaxAutoWidth = 350.0

	ItemPaddingY    = 24.0
	MinItemHeight   = 44.0
	SeparatorHeight = 0.3
)

// WidthMode selects between content-driven width with a minimum floor and a
// caller-fixed width.
type WidthMode struct {
	fixed bool
	width float64
	min   float64
}

// AutoWidth sizes the popup from its content, clamped into
// [max(MinAutoWidth, min), MaxAutoWidth].
func AutoWidth(min float64) WidthMode {
	return WidthMode{min: min}
}

// FixedWidth uses the caller's exact width, bypassing the clamp.
func FixedWidth(width float64) WidthMode {
	return WidthMode{fixed: true, width: width}
}

func (m WidthMode) IsFixed() bool {
	return m.fixed
}

// Floor is the effective minimum width in auto mode.
func (m WidthMode) Floor() float64 {
	return math.Max(MinAutoWidth, m.min)
}

// ItemWidth is the width one item needs to render without clipping:
// horizontal padding, badge slot if present, the three text runs, and a
// 4px gap per present optional element with the base gap always counted.
func ItemWidth(it ItemContent, m TextMeasurer) float64 {
	w := ItemPaddingX + m.TextWidth(StyleTitle, it.Title) + ElementGap
	if it.HasBadge {
		w += BadgeSlotWidth + ElementGap
	}
	if it.Status != "" {
		w += m.TextWidth(StyleStatus, it.Status) + ElementGap
	}
	if it.Detail != "" {
		w += m.TextWidth(StyleDetail, it.Detail) + ElementGap
	}
	return w
}

// MenuWidth computes the popup width for a configuration. Unconstrained
// auto-sizing on very short or very long titles looks broken, so auto mode
// deliberately clamps into [Floor, MaxAutoWidth]; a floor above MaxAutoWidth
// wins over the cap.
func MenuWidth(items []ItemContent, m TextMeasurer, mode WidthMode) float64 {
	if mode.IsFixed() {
		return mode.width
	}

	widest := 0.0
	for _, it := range items {
		widest = math.Max(widest, ItemWidth(it, m))
	}

	w := clamp(widest, mode.Floor(), MaxAutoWidth)
	return math.Max(w, mode.Floor())
}

// ItemHeight is the intrinsic row height: content plus vertical padding,
// never below the minimum tap target.
func ItemHeight(it ItemContent, m TextMeasurer) float64 {
	content := m.LineHeight(StyleTitle)
	if it.Status != "" {
		content = math.Max(content, m.LineHeight(StyleStatus))
	}
	if it.Detail != "" {
		content = math.Max(content, m.LineHeight(StyleDetail))
	}
	return math.Max(content+ItemPaddingY, MinItemHeight)
}

// DetailColumnWidth is the one shared width for every item's detail column:
// ceil of the widest detail text, so right-aligned numeric details line up.
func DetailColumnWidth(items []ItemContent, m TextMeasurer) float64 {
	widest := 0.0
	for _, it := range items {
		if it.Detail == "" {
			continue
		}
		widest = math.Max(widest, m.TextWidth(StyleDetail, it.Detail))
	}
	return math.Ceil(widest)
}

// Metrics is the measured geometry for one configuration.
type Metrics struct {
	Width       float64
	Height      float64
	DetailCol   float64
	ItemHeights []float64
}

// Measure computes the full popup geometry. Zero items yields the width
// floor and zero height; presenting an empty configuration is a caller
// precondition, not a runtime failure.
func Measure(items []ItemContent, m TextMeasurer, mode WidthMode) Metrics {
	metrics := Metrics{
		Width:     MenuWidth(items, m, mode),
		DetailCol: DetailColumnWidth(items, m),
	}

	for i, it := range items {
		h := ItemHeight(it, m)
		metrics.ItemHeights = append(metrics.ItemHeights, h)
		metrics.Height += h
		if i > 0 {
			metrics.Height += SeparatorHeight
		}
	}
	return metrics
}
