package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vista"
	nt "vista/entity"
	"vista/util"
)

var writePath string

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "List the leaf paths of the first record",
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ctx := cmd.Context()
		lgr := newLogger(os.Stderr)

		view, dk, err := openView(ctx, lgr)
		if err != nil {
			lgr.Error(ctx, "failed to open view", err)
			return
		}
		defer dk.Close()

		paths := view.Filter().ObjectPaths()
		for _, path := range paths {
			fmt.Printf("%-24s %s\n", path.Key, path.Label)
		}

		if writePath == "" {
			return
		}

		layout := vista.Config{PageSize: view.Pager().Size()}
		for _, path := range paths {
			layout.Columns = append(layout.Columns, nt.Column{Field: path.Key, Label: path.Label})
		}

		err = util.WriteConfig(layout, writePath, 0644)
		if err != nil {
			lgr.Error(ctx, "failed to write layout", err)
		}
		return
	},
}

func init() {
	pathsCmd.Flags().StringVar(&writePath, "write", "", "write a layout with a column per path")
}
