package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fpick/internal/finder"
	"github.com/kk-code-lab/fpick/internal/score"
	"github.com/kk-code-lab/fpick/internal/ui/picker"
)

func printHelp() {
	fmt.Print(`fpick - Fuzzy path picker

USAGE:
    fpick [OPTIONS] [ROOT]

Without --query, opens an interactive picker and prints the accepted
path on exit. With --query, ranks once and prints the results.

OPTIONS:
    -h, --help            Show this help message and exit
    -q, --query QUERY     One-shot mode: rank QUERY and print matches
    -n, --limit N         Maximum results to keep (default 100)
    -c, --case-sensitive  Match case exactly (default folds ASCII case)
    -e, --exhaustive      Explore every alignment for exact ranking
        --show-dot-files  Let queries match inside dot-file segments
        --no-dot-files    Never match dot-file segments at all
        --hidden          Also scan hidden filesystem entries
        --stdin           Read candidate paths from stdin, one per line
        --scores          Prefix one-shot output lines with the score
`)
}

type cliOptions struct {
	root       string
	query      string
	oneShot    bool
	limit      int
	scanHidden bool
	fromStdin  bool
	showScores bool
	scoring    score.Options
}

func parseArgs(args []string) (cliOptions, error) {
	opts := cliOptions{root: ".", limit: 100}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-h" || arg == "--help":
			printHelp()
			os.Exit(0)
		case arg == "-q" || arg == "--query":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			opts.query = args[i]
			opts.oneShot = true
		case strings.HasPrefix(arg, "--query="):
			opts.query = strings.TrimPrefix(arg, "--query=")
			opts.oneShot = true
		case arg == "-n" || arg == "--limit":
			i++
			if i >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			limit, err := strconv.Atoi(args[i])
			if err != nil || limit < 1 {
				return opts, fmt.Errorf("invalid limit %q", args[i])
			}
			opts.limit = limit
		case arg == "-c" || arg == "--case-sensitive":
			opts.scoring.CaseSensitive = true
		case arg == "-e" || arg == "--exhaustive":
			opts.scoring.Exhaustive = true
		case arg == "--show-dot-files":
			opts.scoring.AlwaysShowDotFiles = true
		case arg == "--no-dot-files":
			opts.scoring.NeverShowDotFiles = true
		case arg == "--hidden":
			opts.scanHidden = true
		case arg == "--stdin":
			opts.fromStdin = true
		case arg == "--scores":
			opts.showScores = true
		case strings.HasPrefix(arg, "-"):
			return opts, fmt.Errorf("unknown option %q", arg)
		default:
			opts.root = arg
		}
	}
	return opts, nil
}

func readStdinPaths() []string {
	paths := make([]string, 0, 1024)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "fpick: %v\n", err)
		os.Exit(2)
	}

	// Showing dot files implies scanning them in the first place.
	hideHidden := !opts.scanHidden && !opts.scoring.AlwaysShowDotFiles
	f := finder.NewFinder(opts.root, opts.scoring, hideHidden)
	if opts.fromStdin {
		f.SetPaths(readStdinPaths())
	} else if err := f.Scan(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "fpick: scanning %s: %v\n", opts.root, err)
		os.Exit(1)
	}

	if opts.oneShot {
		results := f.Rank(opts.query, opts.limit)
		for _, r := range results {
			if opts.showScores {
				fmt.Printf("%.6f\t%s\n", r.Score, r.Path)
			} else {
				fmt.Println(r.Path)
			}
		}
		if len(results) == 0 {
			os.Exit(1)
		}
		return
	}

	// UTF-8 fallback so non-ASCII path names render on limited terminals.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fpick: initializing terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "fpick: initializing terminal: %v\n", err)
		os.Exit(1)
	}

	p := picker.New(screen, f, opts.limit)
	path, accepted := p.Run()
	screen.Fini()

	if !accepted {
		os.Exit(1)
	}
	fmt.Println(path)
}
