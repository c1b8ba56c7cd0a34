package main

import (
	"github.com/spf13/cobra"

	"rmsdplot/internal/artifact"
	"rmsdplot/internal/format"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the supported output image formats",
	Run: func(cmd *cobra.Command, args []string) {
		tb := format.NewTable(format.ASCII)
		tb.Header("Extension", "Format")
		for _, f := range artifact.Formats() {
			tb.Row(f.Ext, f.Name)
		}
		cmd.Println(tb.String())
	},
}
