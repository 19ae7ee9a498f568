package braciole

import "errors"

var (
	ErrCancelled = errors.New("operation cancelled by user")
	ErrEmptyMenu = errors.New("context menu has no items")
)

// MenuAction is how a presented context menu ended.
type MenuAction int

const (
	// MenuDismissed means the user tapped outside the popup.
	MenuDismissed MenuAction = iota
	// MenuSelected means an item was chosen.
	MenuSelected
	// MenuInterrupted means the environment tore the menu down, for
	// example a window resize while it was up.
	MenuInterrupted
)

// MenuResult is the standardized return type for the ContextMenu component.
type MenuResult struct {
	Action    MenuAction
	ItemID    string // ID of the chosen item, empty unless MenuSelected
	ItemIndex int    // index of the chosen item, -1 unless MenuSelected
}

type ListAction int

const (
	ListActionSelected ListAction = iota
	ListActionTriggered
)
