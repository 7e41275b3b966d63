package invoker

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
	"unicode/utf8"

	"github.com/movelang/mfmt/internal/debug"
)

// ResolveFunc locates the movefmt executable. Failures should wrap
// ErrToolNotFound.
type ResolveFunc func() (string, error)

// Invoker runs movefmt once per Execute call. It holds no mutable state, so
// concurrent calls with independent requests are safe; each call owns its own
// child process.
type Invoker struct {
	resolve ResolveFunc
	diag    io.Writer
}

// New creates an Invoker. The formatter's report is written to diag on
// success; a nil diag defaults to os.Stderr.
func New(resolve ResolveFunc, diag io.Writer) *Invoker {
	if diag == nil {
		diag = os.Stderr
	}
	return &Invoker{resolve: resolve, diag: diag}
}

// Execute resolves the movefmt binary, runs it with the arguments built from
// req and blocks until it exits. On success it writes the formatter's report
// to the diagnostic writer and returns the literal "ok" (matching movefmt's
// own CLI contract, which side-effects the report rather than returning it).
//
// Failures are classified as ErrToolNotFound, *SpawnError,
// *ToolExecutionError or *OutputDecodeError; none are retried. The child is
// reaped before Execute returns on every path.
func (inv *Invoker) Execute(req FormatRequest) (string, error) {
	exe, err := inv.resolve()
	if err != nil {
		debug.LogError(err, "resolving movefmt")
		return "", err
	}

	args := BuildArgs(req)
	debug.LogInvocation(exe, args)

	cmd := exec.Command(exe, args...)
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		debug.LogError(err, "spawning movefmt")
		return "", &SpawnError{Path: exe, Err: err}
	}

	waitErr := cmd.Wait()

	exitCode := -1
	if cmd.ProcessState != nil {
		exitCode = cmd.ProcessState.ExitCode()
	}
	debug.LogResult(exitCode, stdout.Len(), stderr.Len(), time.Since(start))

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			return "", &ToolExecutionError{
				ExitCode: exitErr.ExitCode(),
				Stderr:   decodeBestEffort(stderr.Bytes()),
			}
		}
		return "", &SpawnError{Path: exe, Err: waitErr}
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", &OutputDecodeError{Detail: "invalid UTF-8 sequence in stdout"}
	}

	fmt.Fprint(inv.diag, string(out))
	return "ok", nil
}

// decodeBestEffort decodes captured stderr, substituting an empty string for
// invalid UTF-8 rather than failing the whole invocation.
func decodeBestEffort(b []byte) string {
	if !utf8.Valid(b) {
		return ""
	}
	return string(b)
}
