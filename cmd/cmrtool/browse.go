package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/urfave/cli/v3"

	"github.com/earthdata-tools/cmr-opendap/pkg/cmr"
	"github.com/earthdata-tools/cmr-opendap/pkg/snapshot"
)

func newBrowseCommand() *cli.Command {
	return &cli.Command{
		Name:   "browse",
		Usage:  "Browse the filtered snapshot in an interactive table",
		Action: browseAction,
	}
}

func browseAction(ctx context.Context, cmd *cli.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}

	var records []cmr.CollectionRecord
	if err := a.store.Load(snapshot.FilteredKey(a.environment), &records); err != nil {
		return err
	}

	table := tview.NewTable().
		SetFixed(1, 0).
		SetSelectable(true, false)
	table.SetBorder(true).
		SetTitle(fmt.Sprintf(" OPeNDAP collections (%s) — %d records, q to quit ", a.environment, len(records)))

	for col, header := range []string{"SHORT NAME", "VERSION", "CONCEPT ID"} {
		table.SetCell(0, col, tview.NewTableCell(header).
			SetTextColor(tcell.ColorYellow).
			SetSelectable(false).
			SetExpansion(1))
	}
	for i, record := range records {
		table.SetCell(i+1, 0, tview.NewTableCell(record.ShortName))
		table.SetCell(i+1, 1, tview.NewTableCell(record.Version))
		table.SetCell(i+1, 2, tview.NewTableCell(record.ConceptID))
	}

	ui := tview.NewApplication()
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Rune() == 'q' || event.Key() == tcell.KeyEscape {
			ui.Stop()
			return nil
		}
		return event
	})

	go func() {
		<-ctx.Done()
		ui.Stop()
	}()

	return ui.SetRoot(table, true).Run()
}
