package pip

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Candidates lists package-manager binaries in detection priority order.
var Candidates = []string{"pip3", "pip"}

// ErrNotFound reports that none of the candidate package managers is on PATH.
var ErrNotFound = errors.New("pip: no package manager found in PATH")

// Detect returns the first candidate binary available on PATH.
// The result is computed once per launch and never re-evaluated.
func Detect() (string, error) {
	for _, bin := range Candidates {
		if _, err := exec.LookPath(bin); err == nil {
			return bin, nil
		}
	}
	return "", ErrNotFound
}

// Install runs `<bin> install -r <manifest>` with stdout and stderr
// discarded. The launch path ignores the returned error: a broken install
// surfaces when the chat app itself starts.
func Install(ctx context.Context, bin, manifest string) error {
	cmd := exec.CommandContext(ctx, bin, "install", "-r", manifest) //nolint:gosec
	cmd.Env = append(os.Environ(), "NO_COLOR=1")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
