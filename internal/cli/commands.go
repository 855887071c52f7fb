package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"nota/internal/filter"
	"nota/internal/notes"
)

func runList(args []string, eng *filter.Engine, out *filter.Latest) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	label := fs.String("label", "", "Only notes carrying this label")
	asJSON := fs.Bool("json", false, "Emit dataset-shaped JSON")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *label != "" {
		eng.ToggleLabel(*label)
	}

	return printNotes(out.Results, *asJSON)
}

func runLabels(args []string, eng *filter.Engine, out *filter.Latest) int {
	fs := flag.NewFlagSet("labels", flag.ContinueOnError)
	asJSON := fs.Bool("json", false, "Emit JSON")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *asJSON {
		data, err := json.MarshalIndent(out.Labels, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding labels: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	if len(out.Labels) == 0 {
		fmt.Println("No labels.")
		return 0
	}

	for _, l := range out.Labels {
		fmt.Printf("%s (%d)\n", l, eng.CountByLabel(l))
	}
	return 0
}

func runSearch(args []string, eng *filter.Engine, out *filter.Latest) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	label := fs.String("label", "", "Only notes carrying this label")
	asJSON := fs.Bool("json", false, "Emit dataset-shaped JSON")

	// flag.Parse stops at the first positional, but the documented form
	// puts the query before the flags. Collect positionals as query words
	// and keep parsing the tail so trailing flags still apply.
	var queryWords []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return 1
		}
		if fs.NArg() == 0 {
			break
		}
		queryWords = append(queryWords, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	if len(queryWords) == 0 {
		fmt.Fprintln(os.Stderr, "Error: search query required")
		fmt.Fprintln(os.Stderr, "Usage: nota search <query> [--label L]")
		return 1
	}

	eng.SetQuery(strings.Join(queryWords, " "))
	if *label != "" {
		eng.ToggleLabel(*label)
	}

	return printNotes(out.Results, *asJSON)
}

func printNotes(ns []notes.Note, asJSON bool) int {
	if asJSON {
		if ns == nil {
			ns = []notes.Note{}
		}
		data, err := json.MarshalIndent(ns, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding notes: %v\n", err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	if len(ns) == 0 {
		fmt.Println("No notes found.")
		return 0
	}

	for _, n := range ns {
		printNote(n)
	}
	fmt.Printf("\n%d note(s)\n", len(ns))
	return 0
}

func printNote(n notes.Note) {
	line := n.Title
	if date := n.FormatDate(); date != "" {
		line += "  (" + date + ")"
	}
	fmt.Println(line)
	if len(n.Labels) > 0 {
		fmt.Printf("    labels: %s\n", strings.Join(n.Labels, ", "))
	}
	fmt.Printf("    %s\n", n.Link())
}
