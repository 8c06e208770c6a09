package app

import (
	"context"
	"time"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/enum"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/keyword"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/reddit"
	"github.com/Mridul24agaga/newfinalshitgasgs/src/sink"
)

type KeywordsFlags struct {
	Config string
	Output string
}

// NewSearcher builds the remote corpus client. Tests replace it.
var NewSearcher = func(opts reddit.Options) keyword.Searcher {
	return reddit.NewClient(opts)
}

// RunKeywords expects query-or-URL, client id and client secret, and writes
// the weighted keyword map as one JSON object. A failed search still exits
// successfully with the seed keywords after reporting the search error on
// stderr. It returns the process exit code.
func (a *App) RunKeywords(ctx context.Context, args []string, flags KeywordsFlags) int {
	if len(args) != 3 {
		return a.fail(msgInvalidArgs)
	}
	query, clientID, clientSecret := args[0], args[1], args[2]

	if !a.setup(flags.Config) {
		return ExitFailure
	}
	cfg := a.config.Keywords

	searcher := NewSearcher(reddit.Options{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		UserAgent:    cfg.UserAgent,
		TokenURL:     a.config.Reddit.TokenURL,
		APIURL:       a.config.Reddit.APIURL,
		Timeout:      time.Duration(cfg.Timeout) * time.Second,
	})
	extractor := keyword.NewExtractor(a.logger, searcher, keyword.Options{
		Subreddit:   cfg.Subreddit,
		Sort:        cfg.Sort,
		SearchLimit: cfg.SearchLimit,
		ReplyLimit:  cfg.ReplyLimit,
		Rank: keyword.RankOptions{
			TopN:             cfg.TopN,
			SeedBonus:        cfg.SeedBonus,
			SeedAbsentWeight: cfg.SeedAbsentWeight,
		},
	})

	result, err := extractor.Extract(ctx, query)
	if err != nil {
		return a.fail(err.Error())
	}
	if result.Status == enum.ResultDegraded {
		a.logger.WithError(result.Err).WithField("seeds", result.Seeds).Warn("search failed, falling back to seed keywords")
		_ = sink.WriteError(a.stderr, "Search error: "+result.Err.Error())
	}

	if err := sink.NewSimpleSink(a.stdout, flags.Output).Store(result.Keywords); err != nil {
		return a.fail(err.Error())
	}
	return ExitOK
}
