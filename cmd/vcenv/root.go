package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rmocanu/vcenv/pkg/envimport"
	"github.com/rmocanu/vcenv/pkg/msvc"
	"github.com/rmocanu/vcenv/pkg/profile"
)

// app carries the flag state shared by the subcommands.
type app struct {
	verbose    bool
	maxCapture string

	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vcenv",
		Short: "Import the environment of toolchain setup scripts",
		Long: `vcenv runs a toolchain setup script (vcvarsall.bat, or any script
that prepares an environment) in a subordinate shell, captures the
environment the script produces and imports the changed variables.

A process cannot modify the shell that started it, so the imported
environment is delivered either by printing it in an evaluable form
(env, import) or by running a command under it (run):

  eval "$(vcenv env 2015 --target x64)"
  vcenv run -- cl /nologo main.c`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log subordinate shell activity")
	root.PersistentFlags().StringVar(&a.maxCapture, "max-capture", "", "cap on the captured dump size, e.g. 8MiB")

	root.AddCommand(newEnvCommand(a))
	root.AddCommand(newRunCommand(a))
	root.AddCommand(newImportCommand(a))
	root.AddCommand(newListCommand(a))

	return root
}

// newLogger builds the console logger behind --verbose. Without the
// flag all library logging is dropped.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.LowercaseColorLevelEncoder
	cfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.Format("15:04:05.000"))
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	))
}

// importer assembles the shared Importer from the persistent flags.
func (a *app) importer() (*envimport.Importer, error) {
	imp := &envimport.Importer{Logger: a.logger}
	if a.maxCapture != "" {
		max, err := units.RAMInBytes(a.maxCapture)
		if err != nil {
			return nil, fmt.Errorf("invalid --max-capture %q: %w", a.maxCapture, err)
		}
		imp.MaxCapture = max
	}
	return imp, nil
}

// importToolchain performs one import against the live process
// environment: a named profile's script when profileName is set, a
// resolved Visual Studio release otherwise.
func (a *app) importToolchain(ctx context.Context, version, host, target, profileName string) (*envimport.Diff, error) {
	imp, err := a.importer()
	if err != nil {
		return nil, err
	}

	if profileName != "" {
		if version != "" {
			return nil, fmt.Errorf("a version and --profile are mutually exclusive")
		}
		profiles, err := profile.Load()
		if err != nil {
			return nil, err
		}
		p, ok := profile.Find(profiles, profileName)
		if !ok {
			return nil, fmt.Errorf("unknown profile %q", profileName)
		}
		return imp.Import(ctx, p.Script, p.Args...)
	}

	r := &msvc.Resolver{Logger: a.logger}
	return r.Import(ctx, imp, msvc.Selector{Version: version, Host: host, Target: target})
}
