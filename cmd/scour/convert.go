package main

import (
	"fmt"

	"scour/internal/editor"
	"scour/internal/index"
	"scour/internal/script"

	"github.com/spf13/cobra"
)

// NewConvertCmd creates the convert command
func NewConvertCmd() *cobra.Command {
	var formatName string
	var output string

	cmd := &cobra.Command{
		Use:   "convert <script>",
		Short: "Serialize a cleanup script to another format",
		Long:  `Convert a generated cleanup script to sh, json, or csv without opening the panel.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := script.ParseFormat(formatName)
			if err != nil {
				return err
			}

			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			// Fill in sizes so json/csv rows carry them.
			if _, err := index.Attach(s, cfg); err != nil {
				return err
			}

			flow := editor.NewSaveFlow(s)
			flow.SelectFormat(format)
			if output != "" {
				flow.SelectDestination(output)
			}
			if err := flow.ConfirmSave(); err != nil {
				return err
			}

			fmt.Printf("Wrote %s (%s, %d entries)\n", flow.Destination(), format, len(s.Entries()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "json", "output format: sh, json, or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "destination path (defaults to a timestamped name)")

	return cmd
}
