package main

import (
	"flag"
	"os"

	"github.com/terracotta-tales/terracotta/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	apiURL := flag.String("api", "", "backend API base URL (overrides config)")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp()
		os.Exit(2)
	}

	os.Exit(cli.Run(args, cli.Options{
		APIURL: *apiURL,
	}))
}
