package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/config"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/sink"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/util"
)

const (
	ExitOK      = 0
	ExitFailure = 1

	msgInvalidArgs = "Invalid number of arguments"
)

// App holds what both collectors share: the output streams, the loaded
// config and the logger. stdout only ever receives the JSON payload; logs
// and error payloads go to stderr.
type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *log.Logger
	config *config.Config
}

func New(stdout, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
	}
}

// InterruptContext is cancelled on SIGINT or SIGTERM.
func InterruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func (a *App) loadConfig(configPath string) error {
	var cfg = &config.Config{}
	if err := util.ReadConfig(configPath, cfg); err != nil {
		return fmt.Errorf("fail to load config, err: %w", err)
	}
	a.config = cfg
	return nil
}

func (a *App) initLog() {
	var logger = log.New()
	logger.SetFormatter(&log.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})
	logger.SetOutput(a.stderr)

	if a.config.Log.Context {
		logger.SetReportCaller(true)
	}

	if logLevel, err := log.ParseLevel(a.config.Log.Level); err != nil {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(logLevel)
	}
	a.logger = logger
}

// setup loads config and logger; failures are reported on stderr.
func (a *App) setup(configPath string) bool {
	if err := a.loadConfig(configPath); err != nil {
		a.fail(err.Error())
		return false
	}
	a.initLog()
	return true
}

func (a *App) fail(msg string) int {
	_ = sink.WriteError(a.stderr, msg)
	return ExitFailure
}
