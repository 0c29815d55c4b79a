package main

import (
	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vista/browse"
	"vista/util"
)

var logPath string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through records interactively",
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ctx := cmd.Context()

		logFile := util.OpenLog(logPath, 0644)
		defer logFile.Close()
		lgr := newLogger(logFile)

		view, dk, err := openView(ctx, lgr)
		if err != nil {
			lgr.Error(ctx, "failed to open view", err)
			return
		}
		defer dk.Close()

		_, err = tea.NewProgram(browse.New(ctx, view, lgr)).Run()
		if err != nil {
			err = errors.Wrapf(err, "failed to run browser")
			lgr.Error(ctx, "browser exited", err)
		}
		return
	},
}

func init() {
	browseCmd.Flags().StringVar(&logPath, "log", "vista.log", "log file")
}
