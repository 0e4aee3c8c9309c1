package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"scour/internal/editor"
	"scour/internal/index"
	"scour/internal/script"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the headless run command
func NewRunCmd() *cobra.Command {
	var dryRun bool
	var force bool

	cmd := &cobra.Command{
		Use:   "run <script>",
		Short: "Run a cleanup script without the panel",
		Long: `Run a generated cleanup script headlessly, printing per-path progress
and the removed byte total. Defaults to a dry run; pass --dry-run=false
for the real thing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := script.Load(args[0])
			if err != nil {
				return err
			}
			ix, err := index.Attach(s, cfg)
			if err != nil {
				return err
			}

			if !dryRun && !force && ix.ProtectedCount() > 0 {
				return fmt.Errorf("refusing real run: %d protected paths in script (use --force to override)", ix.ProtectedCount())
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			events, err := s.Run(ctx, dryRun)
			if err != nil {
				return err
			}

			track := editor.NewTracker(ix)
			for ev := range events {
				switch ev := ev.(type) {
				case script.LineEvent:
					track.Push(ev.Prefix, ev.Path)
					fmt.Printf("%s: %s\n", ev.Prefix, ev.Path)
				case script.FinishedEvent:
					if ev.Err != nil {
						return ev.Err
					}
				}
			}

			fmt.Printf("\n%s removed (%d events)\n", humanize.Bytes(track.SizeSum()), track.Events())
			if dryRun {
				fmt.Println("Dry run complete. Nothing was deleted.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", true, "simulate the run without deleting anything")
	cmd.Flags().BoolVar(&force, "force", false, "run even when the script touches protected paths")

	return cmd
}
