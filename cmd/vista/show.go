package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vista/render"
)

var (
	page     int
	selected []int
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one page of records",
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ctx := cmd.Context()
		lgr := newLogger(os.Stderr)

		view, dk, err := openView(ctx, lgr)
		if err != nil {
			lgr.Error(ctx, "failed to open view", err)
			return
		}
		defer dk.Close()

		for _, idx := range selected {
			view.Toggle(idx)
		}
		view.Pager().GoTo(page)

		rows := view.Rows()
		drawn := make([]render.Row, len(rows))
		for i, row := range rows {
			drawn[i] = render.Row{Record: row.Record, Selected: row.Selected}
		}

		pager := view.Pager()
		fmt.Println(render.Table(drawn, view.Columns(), render.Options{Cursor: -1, Mark: "*"}))
		fmt.Printf("page %d/%d  rows %d/%d  selected %d\n",
			pager.CurrentPage(), pager.TotalPages(), len(view.Visible()), view.Total(), view.Selection().Count())
		return
	},
}

func init() {
	showCmd.Flags().IntVar(&page, "page", 1, "page to show")
	showCmd.Flags().IntSliceVar(&selected, "select", nil, "positions in the filtered and sorted records to select")
}
