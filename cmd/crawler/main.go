package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/app"
)

func main() {

	a := cli.NewApp()

	a.Name = "crawler"
	a.Version = "0.1.0"
	a.Usage = "same-domain breadth-first crawl, prints page summaries as JSON"
	a.ArgsUsage = "<start-url>"
	a.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file (optional, env vars such as CRAWLER_MAX_PAGES also apply)",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "write the JSON array to this file instead of stdout",
		},
		cli.IntFlag{
			Name:  "max-pages",
			Usage: "page budget (default 10)",
		},
		cli.IntFlag{
			Name:  "max-workers",
			Usage: "concurrent fetches per batch (default 5)",
		},
	}

	a.Action = func(c *cli.Context) error {
		ctx, cancel := app.InterruptContext()
		defer cancel()

		code := app.New(os.Stdout, os.Stderr).RunCrawler(ctx, []string(c.Args()), app.CrawlerFlags{
			Config:     c.String("config"),
			Output:     c.String("output"),
			MaxPages:   c.Int("max-pages"),
			MaxWorkers: c.Int("max-workers"),
		})
		if code != app.ExitOK {
			return cli.NewExitError("", code)
		}
		return nil
	}

	err := a.Run(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(app.ExitFailure)
	}
}
