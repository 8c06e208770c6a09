package controller

import (
	"context"
	"errors"
	"net/url"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/analyzer"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/downloader"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/frontier"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/routingpool"
)

var ErrInvalidStartURL = errors.New("start url must have a scheme and a host")

type Options struct {
	MaxPages      int
	MaxWorkers    int
	Timeout       uint32 // seconds
	UserAgent     string
	MaxParagraphs int
}

// Crawler runs a same-domain breadth-first crawl in batches of at most
// MaxWorkers pages until the frontier is empty or MaxPages URLs have been
// dispatched.
type Crawler struct {
	logger *log.Logger
	opts   Options

	frontier   *frontier.Frontier
	downloader downloader.Downloader
	analyzer   analyzer.Analyzer
	controller Controller
}

func NewCrawler(logger *log.Logger, startURL string, opts Options) (*Crawler, error) {
	u, err := url.Parse(startURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, ErrInvalidStartURL
	}

	f := frontier.New(startURL, opts.MaxPages)
	return &Crawler{
		logger:     logger,
		opts:       opts,
		frontier:   f,
		downloader: downloader.NewSimpleDownloader(logger, opts.Timeout, opts.UserAgent),
		analyzer:   analyzer.NewSimpleAnalyzer(opts.MaxParagraphs),
		controller: NewSimpleController(logger, u.Host, f),
	}, nil
}

// Frontier exposes the crawl state, mainly for inspection after Run.
func (c *Crawler) Frontier() *frontier.Frontier {
	return c.frontier
}

// Run blocks until the crawl ends. Results are in batch order, and in
// completion order within a batch. ctx is only checked between batches;
// a dispatched batch always runs to completion.
func (c *Crawler) Run(ctx context.Context) []entity.PageRecord {
	pool := routingpool.NewSimpleRoutingPool(ctx, c.opts.MaxWorkers)
	_ = pool.Start()
	defer pool.Stop()

	data := []entity.PageRecord{}
	for c.frontier.Pending() {
		if ctx.Err() != nil {
			c.logger.WithError(ctx.Err()).Warn("crawl interrupted")
			break
		}

		batch := c.frontier.Drain(pool.Size())
		if len(batch) == 0 {
			continue
		}

		var wg sync.WaitGroup
		results := make(chan *entity.PageRecord, len(batch))
		for _, u := range batch {
			u := u
			wg.Add(1)
			err := pool.Submit(func(ctx context.Context) {
				defer wg.Done()
				results <- c.FetchAndParse(ctx, u)
			})
			if err != nil {
				wg.Done()
				c.logger.WithError(err).WithField("url", u).Error("fail to dispatch url")
			}
		}
		go func() {
			wg.Wait()
			close(results)
		}()

		for r := range results {
			if r != nil {
				data = append(data, *r)
			}
		}
		c.logger.WithField("batch", len(batch)).WithField("visited", c.frontier.VisitedCount()).
			WithField("collected", len(data)).Info("batch finished")
	}

	return data
}

// FetchAndParse downloads and analyzes one page, enqueueing its same-domain
// links. It returns nil when the page could not be fetched or parsed.
func (c *Crawler) FetchAndParse(ctx context.Context, u string) *entity.PageRecord {
	page := c.downloader.Download(ctx, u)
	parsed := c.analyzer.Analyze(page)
	return c.controller.Process(parsed)
}
