// Command vista filters, sorts, pages and selects records from a json file.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"vista"
	nt "vista/entity"
	"vista/store/duck"
)

var (
	dataPath   string
	layoutPath string
	logCfg     = &sabot.Config{MaxLen: 999}
)

var rootCmd = &cobra.Command{
	Use:   "vista",
	Short: "Filter, sort, page and select records from a json file",
	Long: `Vista loads a json array or newline-delimited json file and shows it
through the filters, sort and page size of a yaml layout.

Write a starting layout with "vista sample".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "json or ndjson file of records")
	rootCmd.PersistentFlags().StringVar(&layoutPath, "layout", "", "yaml layout (default: derived from the data)")
	rootCmd.PersistentFlags().IntVar(&logCfg.MaxLen, "log-max-len", logCfg.MaxLen, "truncate logged values longer than this")

	rootCmd.AddCommand(showCmd, browseCmd, pathsCmd, sampleCmd)
}

func main() {

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// unexported

func newLogger(writer io.Writer) nt.Logger {

	lgr := logCfg.New(writer)
	lgr.AltWriter = os.Stderr
	return lgr
}

// openView loads the data file and builds a view over it.
// Callers close the returned store.
func openView(ctx context.Context, lgr nt.Logger) (view *vista.View, dk *duck.Duck, err error) {

	if dataPath == "" {
		err = errors.New("--data is required")
		return
	}

	cfg := &vista.Config{PageSize: vista.DefaultPageSize}
	if layoutPath != "" {
		cfg, err = vista.LoadConfig(layoutPath)
		if err != nil {
			return
		}
	}

	dk, err = duck.New(lgr)
	if err != nil {
		return
	}

	err = dk.Load(ctx, dataPath)
	if err != nil {
		dk.Close()
		return
	}

	view, err = cfg.New(ctx, dk, lgr)
	if err != nil {
		dk.Close()
	}
	return
}
