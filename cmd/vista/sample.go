package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"vista"
	"vista/util"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a sample layout to --layout unless it exists",
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		path := layoutPath
		if path == "" {
			path = "layout.yaml"
		}

		wrote, err := util.SampleConfig(vista.Sample, path, 0644)
		if err != nil {
			return
		}

		if wrote {
			fmt.Printf("wrote %s\n", path)
			return
		}
		fmt.Printf("%s exists, leaving it be\n", path)
		return
	},
}
