package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"go.uber.org/zap"
)

// Exit codes of the detekt CLI.
const (
	ExitIssuesFound   = 2
	ExitInvalidConfig = 3
)

var (
	// ErrIssuesFound means the analysis completed and reported findings.
	ErrIssuesFound = errors.New("detekt found issues")
	// ErrInvalidConfig means detekt rejected its configuration.
	ErrInvalidConfig = errors.New("detekt configuration is invalid")
	// ErrAnalyzerFailed covers every other non-zero exit.
	ErrAnalyzerFailed = errors.New("detekt failed")
)

// ExitError reports a non-zero exit of the analyzer process.
type ExitError struct {
	Code int
	err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%v (exit code %d)", e.err, e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.err
}

func exitError(code int) *ExitError {
	switch code {
	case ExitIssuesFound:
		return &ExitError{Code: code, err: ErrIssuesFound}
	case ExitInvalidConfig:
		return &ExitError{Code: code, err: ErrInvalidConfig}
	}
	return &ExitError{Code: code, err: ErrAnalyzerFailed}
}

// Tool runs the detekt CLI as a child process. It implements
// detekt.Entrypoints.
type Tool struct {
	// Command is the executable followed by any fixed leading arguments.
	Command []string
	Dir     string
	Environ []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run starts a standard analysis.
func (t *Tool) Run(ctx context.Context, args []string) error {
	return t.exec(ctx, args)
}

// ExportConfig has detekt write its default configuration.
func (t *Tool) ExportConfig(ctx context.Context, args []string) error {
	return t.exec(ctx, args)
}

func (t *Tool) exec(ctx context.Context, args []string) error {
	if len(t.Command) == 0 {
		return fmt.Errorf("no detekt command configured: %w", exec.ErrNotFound)
	}

	execPath, err := exec.LookPath(t.Command[0])
	if err != nil {
		return err
	}

	argv := append(append([]string{}, t.Command[1:]...), args...)
	cmd := exec.CommandContext(ctx, execPath, argv...)
	cmd.Dir = t.Dir
	cmd.Env = t.Environ
	cmd.Stdin = os.Stdin
	cmd.Stdout = writerOr(t.Stdout, os.Stdout)
	cmd.Stderr = writerOr(t.Stderr, os.Stderr)

	zap.L().Debug("starting detekt", zap.String("path", execPath), zap.Strings("argv", argv))

	err = cmd.Run()
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return exitError(exitStatus(ee))
	}
	return err
}

// exitStatus follows the shell convention of 128+n for a process killed by
// signal n.
func exitStatus(ee *exec.ExitError) int {
	if ws, ok := ee.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return ee.ExitCode()
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

// IsNotFound reports whether the analyzer executable could not be found.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var ee *exec.Error
	if errors.As(err, &ee) {
		return errors.Is(ee.Err, exec.ErrNotFound) || errors.Is(ee.Err, os.ErrNotExist)
	}
	return errors.Is(err, exec.ErrNotFound)
}

// IsPermissionDenied reports whether the analyzer executable could not be
// started for lack of permission.
func IsPermissionDenied(err error) bool {
	var ee *exec.Error
	return errors.As(err, &ee) && errors.Is(ee.Err, os.ErrPermission)
}

// ExitCode returns the analyzer's exit code carried by err, if any.
func ExitCode(err error) (int, bool) {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code, true
	}
	return 0, false
}
