package main

import (
	"github.com/spf13/cobra"
)

func newImportCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <script> [args...]",
		Short: "Import the environment of an arbitrary setup script",
		Long: `import runs any environment setup script in a subordinate shell and
prints the variables it added or changed, in an evaluable form. Unlike
env, nothing is resolved: the script is taken as given.

  eval "$(vcenv import /opt/embedded/envsetup.sh arm-none-eabi)"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			imp, err := a.importer()
			if err != nil {
				return err
			}

			diff, err := imp.Import(cmd.Context(), args[0], args[1:]...)
			if err != nil {
				return err
			}
			return writeDiff(cmd.OutOrStdout(), diff, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", defaultFormat(), "output format: sh, cmd or json")

	return cmd
}
