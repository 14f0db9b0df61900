package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// EnvDebug enables the debug log when set to any non-empty value
const EnvDebug = "FX_DEBUG"

// LogFile is where debug output goes
const LogFile = "debug.log"

var (
	Debug   *logrus.Entry
	Nav     *logrus.Entry
	Enabled bool

	base = logrus.New()
)

func init() {
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000000",
	})
	Debug = base.WithField("component", "app")
	Nav = base.WithField("component", "nav")

	// Only enable logging if FX_DEBUG environment variable is set
	if os.Getenv(EnvDebug) == "" {
		base.SetOutput(io.Discard)
		return
	}
	Enable()
}

// Enable turns on debug logging to LogFile, falling back to stderr
func Enable() {
	if Enabled {
		return
	}
	Enabled = true
	base.SetLevel(logrus.DebugLevel)

	f, err := os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		base.SetOutput(os.Stderr)
		return
	}
	base.SetOutput(f)
}

// SetOutput redirects all loggers, mainly for tests
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}
