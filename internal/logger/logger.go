package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger used by the command line tools.
// level comes from the loaded config; debug overrides it.
func Init(level string, debug, noColor bool) {
	Setup(os.Stderr, level, debug, noColor)
}

// Setup is Init writing to w.
func Setup(w io.Writer, level string, debug, noColor bool) {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    debug,
		ReportTimestamp: false,
		Prefix:          "BNCTX",
	})

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.WarnLevel
	}
	if debug {
		lvl = log.DebugLevel
	}
	l.SetLevel(lvl)

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	log.SetDefault(l)
}
