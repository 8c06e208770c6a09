package app

import (
	"context"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/controller"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/sink"
)

// CrawlerFlags override config values when set (non-zero).
type CrawlerFlags struct {
	Config     string
	Output     string
	MaxPages   int
	MaxWorkers int
}

// RunCrawler crawls args[0] and writes the page records as a JSON array.
// It returns the process exit code.
func (a *App) RunCrawler(ctx context.Context, args []string, flags CrawlerFlags) int {
	if len(args) != 1 {
		return a.fail(msgInvalidArgs)
	}
	if !a.setup(flags.Config) {
		return ExitFailure
	}

	cfg := a.config.Crawler
	if flags.MaxPages > 0 {
		cfg.MaxPages = flags.MaxPages
	}
	if flags.MaxWorkers > 0 {
		cfg.MaxWorkers = flags.MaxWorkers
	}

	c, err := controller.NewCrawler(a.logger, args[0], controller.Options{
		MaxPages:      cfg.MaxPages,
		MaxWorkers:    cfg.MaxWorkers,
		Timeout:       cfg.Timeout,
		UserAgent:     cfg.UserAgent,
		MaxParagraphs: cfg.MaxParagraphs,
	})
	if err != nil {
		return a.fail(err.Error())
	}

	a.logger.WithField("url", args[0]).WithField("max_pages", cfg.MaxPages).
		WithField("max_workers", cfg.MaxWorkers).Info("crawl started")
	data := c.Run(ctx)
	a.logger.WithField("pages", len(data)).WithField("visited", c.Frontier().VisitedCount()).Info("crawl finished")

	if err := sink.NewSimpleSink(a.stdout, flags.Output).Store(data); err != nil {
		return a.fail(err.Error())
	}
	return ExitOK
}
