package braciole

import (
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
	"github.com/BrandonKowalski/braciole/pkg/braciole/layout"
	"github.com/veandco/go-sdl2/sdl"
)

// BadgeVariant selects the colored dot rendered in an item's badge slot.
type BadgeVariant int

const (
	BadgeNone BadgeVariant = iota
	BadgeReady
	BadgePending
)

func (b BadgeVariant) color() sdl.Color {
	theme := internal.GetTheme()
	switch b {
	case BadgeReady:
		return theme.BadgeReadyColor
	case BadgePending:
		return theme.BadgePendingColor
	}
	return sdl.Color{}
}

// MenuItem is one row of a context menu. Title is the only required field;
// Status renders dimmed next to the title, Detail right-aligned in a shared
// trailing column, and Badge as a leading dot. Zero StatusColor/DetailColor
// fall back to the theme hint color.
type MenuItem struct {
	ID          string
	Title       string
	Status      string
	StatusColor sdl.Color
	Detail      string
	DetailColor sdl.Color
	Badge       BadgeVariant
	Metadata    interface{}

	// OnSelect runs after the dismissal animation completes, at most
	// once, and only if this item was tapped.
	OnSelect func()
}

// MenuConfiguration describes one context menu presentation. Built fresh
// per gesture; a configuration is owned by exactly one presentation.
type MenuConfiguration struct {
	Items []MenuItem

	// Anchor is the rect the popup attaches to, in Source's coordinate
	// space. Source zero means window coordinates.
	Anchor layout.Rect
	Source layout.SurfaceID

	// Width selects auto or fixed sizing. The zero value is auto with
	// no extra floor.
	Width layout.WidthMode
}

func (c *MenuConfiguration) contents() []layout.ItemContent {
	items := make([]layout.ItemContent, len(c.Items))
	for i, it := range c.Items {
		items[i] = layout.ItemContent{
			HasBadge: it.Badge != BadgeNone,
			Title:    it.Title,
			Status:   it.Status,
			Detail:   it.Detail,
		}
	}
	return items
}
