package commands

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/willowxr"
)

var (
	configPath string
	debug      bool
	cfg        willowxr.Config
)

// Execute runs the grabreplay command tree against os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	configPath = ""
	debug = false
	cfg = willowxr.Config{}

	root := &cobra.Command{
		Use:           "grabreplay",
		Short:         "Replay pinch gesture scripts against the willowxr interaction core",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				cfg = willowxr.DefaultConfig()
			} else {
				c, err := willowxr.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = c
			}
			if debug {
				cfg.Debug = true
			}
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "TOML config file (default: built-in defaults)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log interaction events and frame stats to stderr")

	root.AddCommand(runCmd(), checkCmd(), configCmd())
	return root
}
