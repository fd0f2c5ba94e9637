// Command detektw runs the detekt static analyzer for a Maven project using
// the detekt-maven-plugin parameter set.
//
// Usage:
//
//	detektw [check] [-Dname=value ...] [--basedir dir] [-f detektw.yaml]
//	detektw args [--json]
//	detektw version
//
// Exit codes: 0 on success, the analyzer's own exit code when it ran and
// failed (2 when it found issues, 128+n when it was killed by signal n), 127
// when the analyzer cannot be found, 126 when it cannot be executed and 1 for
// every other error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"detektw/internal/cli"
	"detektw/internal/launcher"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := run(ctx, os.Args[1:], os.Environ(), os.Stdout, os.Stderr)
	stop()
	os.Exit(exitCode)
}

// run executes the command tree and maps the outcome to an exit code.
func run(ctx context.Context, args []string, environ []string, stdout, stderr io.Writer) int {
	return runWith(ctx, args, cli.Env{
		Environ: environ,
		Home:    userHome(environ),
		Stdout:  stdout,
		Stderr:  stderr,
	})
}

func runWith(ctx context.Context, args []string, env cli.Env) int {
	err := cli.Execute(ctx, env, args)
	if err == nil {
		return 0
	}

	if code, ok := launcher.ExitCode(err); ok {
		fmt.Fprintf(env.Stderr, "Error: %v\n", err)
		return code
	}
	if launcher.IsNotFound(err) {
		fmt.Fprintf(env.Stderr, "Error: detekt command not found: %v\n", err)
		return 127
	}
	if launcher.IsPermissionDenied(err) {
		fmt.Fprintf(env.Stderr, "Error: permission denied: %v\n", err)
		return 126
	}
	fmt.Fprintln(env.Stderr, "Error:", err)
	return 1
}

// userHome prefers HOME from environ so tests can point it elsewhere.
func userHome(environ []string) string {
	for i := len(environ) - 1; i >= 0; i-- {
		if home, ok := strings.CutPrefix(environ[i], "HOME="); ok && home != "" {
			return home
		}
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
