package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/lvlath-labs/hsearch/domain"
	_ "github.com/lvlath-labs/hsearch/domains/pancake"
	_ "github.com/lvlath-labs/hsearch/domains/tsp"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	app := &cli.App{
		Name:  "searchbench",
		Usage: "run heuristic search benchmarks against a registered domain",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to a TOML harness configuration",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory for per-run json/text reports",
				Value: ".",
			},
		},
		Action: func(c *cli.Context) error {
			return runConfig(logger, c.String("config"), c.String("out"))
		},
		Commands: []*cli.Command{
			{
				Name:  "domains",
				Usage: "list registered domain names",
				Action: func(*cli.Context) error {
					fmt.Println(strings.Join(domain.Names(), "\n"))
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("searchbench failed", zap.Error(err))
		os.Exit(1)
	}
}
