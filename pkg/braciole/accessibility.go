package braciole

import (
	"strings"

	"github.com/BrandonKowalski/braciole/pkg/braciole/i18n"
	"github.com/BrandonKowalski/braciole/pkg/braciole/internal"
)

// Announcer receives spoken-feedback strings for assistive tech. The
// default announcer writes them to the structured log, which is where
// screen-reader shims on the target devices pick them up.
type Announcer interface {
	Announce(label string)
}

type logAnnouncer struct{}

func (logAnnouncer) Announce(label string) {
	internal.GetLogger().Info("announce", "label", label)
}

var announcer Announcer = logAnnouncer{}

// SetAnnouncer replaces the announcement sink. Passing nil restores the
// log-backed default.
func SetAnnouncer(a Announcer) {
	if a == nil {
		announcer = logAnnouncer{}
		return
	}
	announcer = a
}

// ItemLabel builds the spoken label for one menu item: title, then status
// and detail, comma-separated, skipping whatever is absent. The badge is a
// purely visual accent and stays out of the spoken label.
func ItemLabel(item MenuItem) string {
	parts := []string{item.Title}
	if item.Status != "" {
		parts = append(parts, item.Status)
	}
	if item.Detail != "" {
		parts = append(parts, item.Detail)
	}
	return strings.Join(parts, ", ")
}

// announceMenu reports a menu presentation: an item count summary followed
// by each item's label.
func announceMenu(config MenuConfiguration) {
	summary := i18n.LocalizePlural(&i18n.Message{
		ID:    "menu_opened",
		One:   "Menu opened, {{.Count}} item",
		Other: "Menu opened, {{.Count}} items",
	}, len(config.Items), map[string]interface{}{"Count": len(config.Items)})
	announcer.Announce(summary)

	for _, item := range config.Items {
		announcer.Announce(ItemLabel(item))
	}
}
