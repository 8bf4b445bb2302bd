package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRunCommand(a *app) *cobra.Command {
	var (
		host    string
		target  string
		profile string
	)

	cmd := &cobra.Command{
		Use:   "run [version] -- <command> [args...]",
		Short: "Run a command under an imported toolchain environment",
		Long: `run imports the toolchain environment into this process, then runs
the command after "--" with it. The command's exit code becomes vcenv's
exit code:

  vcenv run 2015 --target x64 -- cl /nologo main.c
  vcenv run --profile embedded -- make`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := cmd.ArgsLenAtDash()
			if sep < 0 {
				return fmt.Errorf("missing \"--\" before the command to run")
			}
			if sep > 1 {
				return fmt.Errorf("at most one version may precede \"--\"")
			}
			version := ""
			if sep == 1 {
				version = args[0]
			}
			command := args[sep:]
			if len(command) == 0 {
				return fmt.Errorf("no command to run after \"--\"")
			}

			diff, err := a.importToolchain(cmd.Context(), version, host, target, profile)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s %d variables\n",
				color.GreenString("imported"), len(diff.Added)+len(diff.Changed))

			child := exec.CommandContext(cmd.Context(), command[0], command[1:]...)
			child.Stdin = os.Stdin
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()

			err = child.Run()
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "host architecture (x86, amd64, x64, Win64, arm64)")
	cmd.Flags().StringVar(&target, "target", "", "target architecture")
	cmd.Flags().StringVar(&profile, "profile", "", "import a named profile instead of a Visual Studio release")

	return cmd
}
