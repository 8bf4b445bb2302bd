package main

import (
	"github.com/spf13/cobra"
)

func newEnvCommand(a *app) *cobra.Command {
	var (
		host    string
		target  string
		profile string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "env [version]",
		Short: "Print the environment a toolchain setup script produces",
		Long: `env resolves the requested Visual Studio release (the newest
installed one when the version is omitted), imports the environment its
vcvarsall.bat produces and prints the added and changed variables in an
evaluable form:

  eval "$(vcenv env 2015 --target x64)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			version := ""
			if len(args) == 1 {
				version = args[0]
			}

			diff, err := a.importToolchain(cmd.Context(), version, host, target, profile)
			if err != nil {
				return err
			}
			return writeDiff(cmd.OutOrStdout(), diff, format)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "host architecture (x86, amd64, x64, Win64, arm64)")
	cmd.Flags().StringVar(&target, "target", "", "target architecture")
	cmd.Flags().StringVar(&profile, "profile", "", "import a named profile instead of a Visual Studio release")
	cmd.Flags().StringVar(&format, "format", defaultFormat(), "output format: sh, cmd or json")

	return cmd
}
