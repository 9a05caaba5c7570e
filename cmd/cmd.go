// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func listFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "list",
		Aliases: []string{"l"},
		Usage:   "Target reading list (defaults to the base reading list)",
	}
}

// setupCommand initializes configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize configuration and database, run migrations",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "rollback",
				Usage: "Roll back the most recent migration instead",
			},
		},
		Action: r.Setup,
	}
}

// serveCommand runs the Discord bot.
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Connect to Discord and handle $lib commands",
		Flags: []cli.Flag{
			configFlag(),
		},
		Action: r.Serve,
	}
}

// searchCommand searches the catalog from the terminal.
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Search the book catalog",
		ArgsUsage: "<query>",
		Flags: []cli.Flag{
			configFlag(),
			&cli.BoolFlag{
				Name:  "plain",
				Usage: "Print all results instead of opening the interactive browser",
			},
		},
		Action: r.Search,
	}
}

// listCommand manages local reading lists.
func listCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Manage reading lists locally",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Search for a book and add the first match to a list",
				ArgsUsage: "<query>",
				Flags:     []cli.Flag{configFlag(), listFlag()},
				Action:    r.ListAdd,
			},
			{
				Name:      "remove",
				Usage:     "Remove a book from a list by exact title",
				ArgsUsage: "<title>",
				Flags:     []cli.Flag{configFlag(), listFlag()},
				Action:    r.ListRemove,
			},
			{
				Name:  "show",
				Usage: "Show the entries of a list",
				Flags: []cli.Flag{
					configFlag(),
					listFlag(),
					&cli.BoolFlag{
						Name:  "tui",
						Usage: "Browse the list interactively",
					},
				},
				Action: r.ListShow,
			},
		},
	}
}
