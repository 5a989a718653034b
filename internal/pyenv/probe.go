package pyenv

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"
)

// Interpreter is the Python binary the chat app entry scripts run under.
const Interpreter = "python3"

var verRe = regexp.MustCompile(`\b(\d+\.\d+)(?:\.\d+)?\b`)

// Version reports the interpreter's major.minor version for display.
// Returns "" when python3 is missing or prints no dotted version; callers
// treat a blank version as informational, never fatal.
func Version(ctx context.Context) string {
	path, err := exec.LookPath(Interpreter)
	if err != nil {
		return ""
	}
	cctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	out, err := exec.CommandContext(cctx, path, "--version").CombinedOutput()
	if err != nil {
		return ""
	}
	return ParseVersion(string(out))
}

// ParseVersion extracts the first major.minor token from version output.
func ParseVersion(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	// Take first line
	line := strings.Split(s, "\n")[0]
	if m := verRe.FindStringSubmatch(line); len(m) > 1 {
		return m[1]
	}
	return ""
}
