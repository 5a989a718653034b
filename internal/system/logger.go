package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared launcher logger. It prints to stderr with
// timestamps so diagnostics never mix with the menu lines on stdout.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})
