package cli

import (
	"fmt"
	"os"

	"nota/internal/filter"
	"nota/internal/notes"
)

// Run executes a CLI subcommand against a freshly loaded note set.
func Run(args []string, src notes.DataSource, minScore int) int {
	if len(args) == 0 {
		printUsage()
		return 1
	}

	command := args[0]
	cmdArgs := args[1:]

	switch command {
	case "list", "ls", "l":
		return withEngine(src, minScore, func(eng *filter.Engine, out *filter.Latest) int {
			return runList(cmdArgs, eng, out)
		})
	case "labels":
		return withEngine(src, minScore, func(eng *filter.Engine, out *filter.Latest) int {
			return runLabels(cmdArgs, eng, out)
		})
	case "search", "s":
		return withEngine(src, minScore, func(eng *filter.Engine, out *filter.Latest) int {
			return runSearch(cmdArgs, eng, out)
		})
	case "help", "-h", "--help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		return 1
	}
}

// withEngine builds an engine rendering into a Latest sink, loads the note
// set, and hands both to the command.
func withEngine(src notes.DataSource, minScore int, cmd func(*filter.Engine, *filter.Latest) int) int {
	ns, err := src.FetchAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading notes: %v\n", err)
		return 1
	}

	out := &filter.Latest{}
	eng := filter.NewEngine(filter.NewFuzzyMatcher(minScore), out)
	eng.Load(ns)
	return cmd(eng, out)
}

func printUsage() {
	fmt.Println(`nota - browse, search, and filter your notes

Usage: nota [flags] [command] [arguments]

Commands:
  list, ls    List notes
              nota list                  # All notes in dataset order
              nota list --label math     # Only notes carrying a label
              nota list --json           # Dataset-shaped JSON output

  labels      List every label with its note count

  search, s   Fuzzy-search titles and previews
              nota search "graph layouts"
              nota search terraform --label infra

  help        Show this help message

Flags:
  --data <file>   Notes dataset file (notes-data.json)
  --dir <dir>     Notes directory with a notes.json registry

Running nota without a command launches the interactive browser.`)
}
