// Package main scores a recorded control cycle with the cost critic.
package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"go.viam.com/mppi/logging"
)

const (
	flagScenario          = "scenario"
	flagConsiderFootprint = "consider-footprint"
	flagWorkers           = "workers"
	flagDebug             = "debug"
)

func main() {
	logger := logging.NewLogger("costcritic")
	app := &cli.App{
		Name:  "costcritic",
		Usage: "score trajectory batches against a costmap",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger.SetLevel(logging.DEBUG)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "score",
				Usage: "score the trajectories of a scenario file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     flagScenario,
						Aliases:  []string{"s"},
						Usage:    "load the scenario from `FILE`",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  flagConsiderFootprint,
						Usage: "check the full footprint instead of the center point",
					},
					&cli.IntFlag{
						Name:  flagWorkers,
						Usage: "number of goroutines scoring trajectories",
					},
				},
				Action: func(c *cli.Context) error {
					scenario, err := LoadScenario(c.String(flagScenario))
					if err != nil {
						return err
					}
					attributes := map[string]interface{}{}
					for k, v := range scenario.Critic {
						attributes[k] = v
					}
					if c.IsSet(flagConsiderFootprint) {
						attributes["consider_footprint"] = c.Bool(flagConsiderFootprint)
					}
					if c.IsSet(flagWorkers) {
						attributes["workers"] = c.Int(flagWorkers)
					}
					return scoreScenario(scenario, attributes, c.App.Writer, logger)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
