package main

import (
	"fmt"
	"os"

	"scour/internal/config"
	"scour/internal/log"
	"scour/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfgFile string
	cfg     *config.Config
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:     "scour [script]",
		Short:   "Review and run generated cleanup scripts",
		Long: `Scour opens the shell script produced by a duplicate-finder planning
stage, lets you review it, save it as sh/json/csv, and run it with live
progress. Runs are simulated (dry run) unless you flip the toggle.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadConfigFile(cfgFile)
			} else {
				cfg, err = config.LoadConfig()
			}
			if err != nil {
				fmt.Printf("Warning: %v\n", err)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}
			log.SetDebug(debug || cfg.Settings.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptPath := cfg.Script.Default
			if len(args) > 0 {
				scriptPath = args[0]
			}

			m := tui.New(cfg, version)
			if scriptPath != "" {
				if err := m.LoadScript(scriptPath); err != nil {
					return err
				}
			}

			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running panel: %w", err)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/scour/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewConvertCmd())

	return rootCmd
}
