package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
	lang       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "elemental",
		Short:         "Elemental explores the periodic table of the elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, browse when attached to a terminal
			if isTerminal(cmd.OutOrStdout()) {
				return runBrowse(cmd, app, &browseOptions{})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Settings file (default $XDG_CONFIG_HOME/elemental/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.lang, "lang", "", "Display language as a BCP 47 tag, such as de")

	cmd.AddCommand(newPrintCmd(app))
	cmd.AddCommand(newPropertiesCmd(app))
	cmd.AddCommand(newScaleCmd(app))
	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
