package main

import (
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/Mridul24agaga/newfinalshitgasgs/src/app"
)

func main() {

	a := cli.NewApp()

	a.Name = "keywords"
	a.Version = "0.1.0"
	a.Usage = "weighted keyword frequencies from reddit discussions about a query or URL"
	a.ArgsUsage = "<query-or-url> <client-id> <client-secret>"
	a.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config,c",
			Usage: "config file (optional, env vars such as KEYWORDS_SEED_BONUS also apply)",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "write the JSON object to this file instead of stdout",
		},
	}

	a.Action = func(c *cli.Context) error {
		ctx, cancel := app.InterruptContext()
		defer cancel()

		code := app.New(os.Stdout, os.Stderr).RunKeywords(ctx, []string(c.Args()), app.KeywordsFlags{
			Config: c.String("config"),
			Output: c.String("output"),
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
