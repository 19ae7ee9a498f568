package main

import (
	"fmt"

	"github.com/BrandonKowalski/braciole/pkg/braciole"
)

func main() {
	braciole.Init(braciole.Options{
		WindowTitle: "Braciole Demo",
		LogFilename: "braciole-demo.log",
	})
	defer braciole.Close()

	logger := braciole.GetLogger()

	items := []braciole.RowItem{
		{Text: "quarterly-report.pdf", Detail: "1.2 MB"},
		{Text: "vacation-photos", Detail: "214 items"},
		{Text: "notes.txt", Detail: "4 KB"},
		{Text: "backup-2026-08.tar.gz", Detail: "890 MB"},
	}

	options := braciole.DefaultListOptions("Files", items)
	options.FooterHelpItems = []braciole.FooterHelpItem{
		{ButtonName: "Tap", HelpText: "Open"},
		{ButtonName: "Hold", HelpText: "Options"},
	}
	options.MenuForRow = func(index int, item braciole.RowItem) *braciole.MenuConfiguration {
		action := func(id string) func() {
			return func() {
				logger.Info("menu action", "row", item.Text, "action", id)
			}
		}
		return &braciole.MenuConfiguration{
			Items: []braciole.MenuItem{
				{ID: "open", Title: "Open", OnSelect: action("open")},
				{ID: "rename", Title: "Rename", OnSelect: action("rename")},
				{ID: "share", Title: "Share", Status: "via link", Badge: braciole.BadgeReady, OnSelect: action("share")},
				{ID: "delete", Title: "Delete", Detail: item.Detail, Badge: braciole.BadgePending, OnSelect: action("delete")},
			},
		}
	}

	result, err := braciole.List(options)
	if err != nil {
		logger.Info("list cancelled", "error", err)
		return
	}

	if result.Menu != nil {
		fmt.Printf("menu action %q on row %d\n", result.Menu.ItemID, result.Selected[0])
		return
	}
	if len(result.Selected) > 0 {
		fmt.Printf("opened row %d: %s\n", result.Selected[0], items[result.Selected[0]].Text)
	}
}
