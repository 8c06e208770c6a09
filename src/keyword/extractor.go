package keyword

import (
	"context"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/entity"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/enum"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/reddit"
)

// Searcher is the remote discussion corpus. *reddit.Client implements it.
type Searcher interface {
	Search(ctx context.Context, subreddit, query, sort string, limit int) ([]reddit.Submission, error)
	Comments(ctx context.Context, submissionID string) ([]reddit.Comment, error)
}

type Options struct {
	Subreddit   string
	Sort        string
	SearchLimit int
	ReplyLimit  int
	Rank        RankOptions
}

// Result distinguishes a full extraction from one that fell back to the
// seed keywords because the search failed. Err carries the search failure
// of a degraded result.
type Result struct {
	Status   enum.ResultStatus
	Keywords *entity.KeywordCounts
	Seeds    []string
	Err      error
}

type Extractor struct {
	logger   *log.Logger
	searcher Searcher
	opts     Options
}

func NewExtractor(logger *log.Logger, searcher Searcher, opts Options) *Extractor {
	return &Extractor{
		logger:   logger,
		searcher: searcher,
		opts:     opts,
	}
}

// Extract runs the whole pipeline for a query or URL. A search failure
// yields a degraded Result, not an error; the error return is reserved for
// an interrupted context.
func (e *Extractor) Extract(ctx context.Context, input string) (Result, error) {
	seeds := ExtractSeeds(input)
	query := SearchQuery(input, seeds)
	e.logger.WithField("query", query).WithField("seeds", seeds).Debug("seed keywords extracted")

	tokens, err := e.Aggregate(ctx, query)
	if err != nil {
		if ctx.Err() != nil {
			return Result{}, ctx.Err()
		}
		return Result{
			Status:   enum.ResultDegraded,
			Keywords: Rank(nil, seeds, e.opts.Rank),
			Seeds:    seeds,
			Err:      err,
		}, nil
	}

	return Result{
		Status:   enum.ResultFull,
		Keywords: Rank(tokens, seeds, e.opts.Rank),
		Seeds:    seeds,
	}, nil
}

// Aggregate searches for query and returns the lowercase whitespace tokens
// of every result's title and body and of its first ReplyLimit comments in
// breadth-first order. It stops at the first error.
func (e *Extractor) Aggregate(ctx context.Context, query string) ([]string, error) {
	submissions, err := e.searcher.Search(ctx, e.opts.Subreddit, query, e.opts.Sort, e.opts.SearchLimit)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	var tokens []string
	for _, s := range submissions {
		tokens = append(tokens, tokenize(s.Title)...)
		tokens = append(tokens, tokenize(s.Selftext)...)

		forest, err := e.searcher.Comments(ctx, s.ID)
		if err != nil {
			return nil, fmt.Errorf("comments of %s: %w", s.ID, err)
		}
		comments := reddit.Flatten(forest)
		if len(comments) > e.opts.ReplyLimit {
			comments = comments[:e.opts.ReplyLimit]
		}
		for _, c := range comments {
			tokens = append(tokens, tokenize(c.Body)...)
		}
	}

	e.logger.WithField("submissions", len(submissions)).WithField("tokens", len(tokens)).Info("search aggregated")
	return tokens, nil
}

func tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}
