package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/rmocanu/vcenv/pkg/msvc"
	"github.com/rmocanu/vcenv/pkg/profile"
)

func newListCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed toolchains and configured profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			r := &msvc.Resolver{Logger: a.logger}
			installed := r.Installed()
			if len(installed) == 0 {
				fmt.Fprintln(out, color.YellowString("no Visual Studio toolchains found"))
			}
			for _, tc := range installed {
				fmt.Fprintf(out, "%s  %s\n", color.GreenString(tc.Version), tc.SetupScript)
			}

			profiles, err := profile.Load()
			if err != nil {
				return err
			}
			for _, p := range profiles {
				fmt.Fprintf(out, "%s  %s\n", color.CyanString(p.Name), p.Script)
			}
			return nil
		},
	}

	return cmd
}
