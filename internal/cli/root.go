// Package cli defines the detektw command tree.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"detektw/internal/detekt"
	"detektw/internal/launcher"
	"detektw/internal/logging"
)

// Options are the flags shared by every command.
type Options struct {
	Defines   []string
	BaseDir   string
	File      string
	LogLevel  string
	LogFormat string
}

// EntrypointsFunc creates the analyzer entry points for a command line.
type EntrypointsFunc func(command []string, dir string, environ []string, stdout, stderr io.Writer) detekt.Entrypoints

// Env is the process context the commands run in.
type Env struct {
	Environ []string
	Home    string
	Stdout  io.Writer
	Stderr  io.Writer

	// Entrypoints defaults to launching the detekt CLI as a child process.
	Entrypoints EntrypointsFunc
}

// ProcessEntrypoints runs the detekt CLI through launcher.Tool.
func ProcessEntrypoints(command []string, dir string, environ []string, stdout, stderr io.Writer) detekt.Entrypoints {
	return &launcher.Tool{
		Command: command,
		Dir:     dir,
		Environ: environ,
		Stdout:  stdout,
		Stderr:  stderr,
	}
}

// Execute runs the detektw command tree with args. The global logger set up
// for the run is synced and restored before Execute returns, also when the
// command fails.
func Execute(ctx context.Context, env Env, args []string) error {
	root, restore := NewRootCommand(env)
	defer restore()

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the detektw command. Without a subcommand it behaves
// like "check". The returned function undoes the logger setup done when the
// command runs; call it once the command has finished.
func NewRootCommand(env Env) (*cobra.Command, func()) {
	if env.Entrypoints == nil {
		env.Entrypoints = ProcessEntrypoints
	}
	if env.Stdout == nil {
		env.Stdout = os.Stdout
	}
	if env.Stderr == nil {
		env.Stderr = os.Stderr
	}

	opts := &Options{}
	var restoreLogger func()

	root := &cobra.Command{
		Use:   "detektw",
		Short: "Run detekt with the detekt-maven-plugin parameter set",
		Long: `detektw runs the detekt static analyzer for a Maven project.

Parameters use the detekt-maven-plugin property names and can be given as
-D properties, DETEKT_* environment variables or in detektw.yaml. Rule-set
plugins are resolved from the plugin's dependencies in pom.xml and the local
Maven repository.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			restore, err := logging.Init(opts.LogLevel, opts.LogFormat, env.Stderr)
			if err != nil {
				return err
			}
			restoreLogger = restore
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, env)
		},
	}

	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)

	flags := root.PersistentFlags()
	flags.StringArrayVarP(&opts.Defines, "define", "D", nil, "Define a property, e.g. -Ddetekt.parallel=true")
	flags.StringVar(&opts.BaseDir, "basedir", ".", "Project base directory")
	flags.StringVarP(&opts.File, "file", "f", "", "Config file (default: detektw.yaml, detektw.yml or detektw.toml in the base directory)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.LogFormat, "log-format", logging.FormatConsole, "Log format: console or json")

	root.AddCommand(
		newCheckCommand(opts, env),
		newArgsCommand(opts, env),
		newVersionCommand(),
	)

	return root, func() {
		if restoreLogger != nil {
			restoreLogger()
			restoreLogger = nil
		}
	}
}

func newCheckCommand(opts *Options, env Env) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Run detekt (or export its default config with -Ddetekt.generate-config)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, env)
		},
	}
}

func runCheck(ctx context.Context, opts *Options, env Env) error {
	if ctx == nil {
		ctx = context.Background()
	}

	inv, err := prepare(opts, env)
	if err != nil {
		return err
	}

	ep := env.Entrypoints(inv.Command, inv.BaseDir, env.Environ, env.Stdout, env.Stderr)
	return detekt.Execute(ctx, inv.Detekt, ep)
}
