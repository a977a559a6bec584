package command

import (
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/pkg/errors"

	"github.com/cirocosta/dockerbuilder/config"
)

// newLogger builds the per-run logger: one sink on stdout, one on the
// append-mode log file configured by the environment. The logger is handed
// down explicitly to every step; nothing mutates it mid-run.
//
func newLogger(cfg config.Logging, verbose bool) (logger lager.Logger, close func(), err error) {
	level, err := parseLevel(cfg.LevelOrDefault())
	if err != nil {
		return
	}

	if verbose {
		level = lager.DEBUG
	}

	logger = lager.NewLogger("dockerbuilder")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, level))

	file, err := os.OpenFile(cfg.FileOrDefault(),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		err = errors.Wrapf(err,
			"failed to open log file %s", cfg.FileOrDefault())
		return
	}

	logger.RegisterSink(lager.NewWriterSink(file, level))
	close = func() { file.Close() }

	return
}

func parseLevel(level string) (parsed lager.LogLevel, err error) {
	switch level {
	case "debug":
		parsed = lager.DEBUG
	case "info":
		parsed = lager.INFO
	case "error":
		parsed = lager.ERROR
	case "fatal":
		parsed = lager.FATAL
	default:
		err = errors.Errorf("unknown log level %q", level)
	}

	return
}
