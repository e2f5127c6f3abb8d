// SPDX-License-Identifier: MIT

// Command extnum runs a spanning-tree or shortest-path algorithm over an
// edge list whose weights are extended numbers.
//
// Usage:
//
//	extnum [flags] [file]
//
// The input starts with the vertex count n, followed by one "u v w" line
// per edge. w is a decimal integer or an infinity literal ("inf", "-inf").
// Text after '#' is ignored. Without a file argument the edge list is read
// from stdin.
//
// Flags:
//
//	-algo      prim, kruskal, dijkstra or bellman-ford (default prim)
//	-root      root of the tree or source of the paths (default 0)
//	-max       dijkstra distance cap, e.g. 100 or inf (default inf)
//	-directed  treat edges as one-way
//	-color     auto, always or never (default auto)
//	-trace     error, info or debug; traces go to stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"github.com/katalvlaran/extnum/extended"
	"github.com/katalvlaran/extnum/graph"
	"github.com/katalvlaran/extnum/mst"
	"github.com/katalvlaran/extnum/shortest"
)

// Algorithm names accepted by -algo.
const (
	algoPrim        = mst.MethodPrim
	algoKruskal     = mst.MethodKruskal
	algoDijkstra    = "dijkstra"
	algoBellmanFord = "bellman-ford"
)

var (
	// ErrUsage indicates bad flags or arguments.
	ErrUsage = errors.New("extnum: usage")

	// ErrInput indicates a malformed edge list.
	ErrInput = errors.New("extnum: bad input")
)

type config struct {
	algo     string
	root     int
	max      string
	directed bool
	color    string
	trace    string
	file     string
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		if errors.Is(err, ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// run is main without the process exit, reading from stdin unless a file
// argument is given.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.trace != "" {
		tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
		t := tracing.Select("extnum")
		t.SetOutput(stderr)
		t.SetTraceLevel(tracing.TraceLevelFromString(cfg.trace))
	}

	in := stdin
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	list, err := readEdgeList(in)
	if err != nil {
		return err
	}

	p := newPalette(useColor(cfg.color, stdout))
	var opts []graph.Option
	if cfg.directed {
		opts = append(opts, graph.WithDirected())
	}
	switch cfg.algo {
	case algoPrim, algoKruskal:
		g, err := buildGraph(list, extended.ParseUint64, opts...)
		if err != nil {
			return err
		}
		tree, err := mst.Compute(g, mst.WithMethod(cfg.algo), mst.WithRoot(cfg.root))
		if tree.Parent != nil {
			renderTree(stdout, p, cfg.algo, tree)
		}
		return err
	case algoDijkstra:
		bound, err := extended.ParseUint64(cfg.max)
		if err != nil {
			return fmt.Errorf("%w: -max: %v", ErrUsage, err)
		}
		g, err := buildGraph(list, extended.ParseUint64, opts...)
		if err != nil {
			return err
		}
		res, err := shortest.Dijkstra(g, cfg.root, shortest.WithMaxDistance(bound))
		if err != nil {
			return err
		}
		renderPaths(stdout, p, cfg.algo, res)
	case algoBellmanFord:
		g, err := buildGraph(list, extended.ParseInt64, opts...)
		if err != nil {
			return err
		}
		res, err := shortest.BellmanFord(g, cfg.root)
		if err != nil {
			return err
		}
		renderPaths(stdout, p, cfg.algo, res)
	}

	return nil
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("extnum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.algo, "algo", algoPrim, "algorithm: prim, kruskal, dijkstra or bellman-ford")
	fs.IntVar(&cfg.root, "root", 0, "tree root or path source")
	fs.StringVar(&cfg.max, "max", "inf", "dijkstra distance cap")
	fs.BoolVar(&cfg.directed, "directed", false, "treat edges as one-way")
	fs.StringVar(&cfg.color, "color", "auto", "colorize output: auto, always or never")
	fs.StringVar(&cfg.trace, "trace", "", "trace level: error, info or debug")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	switch cfg.algo {
	case algoPrim, algoKruskal, algoDijkstra, algoBellmanFord:
	default:
		return cfg, fmt.Errorf("%w: unknown algorithm %q", ErrUsage, cfg.algo)
	}
	switch cfg.color {
	case "auto", "always", "never":
	default:
		return cfg, fmt.Errorf("%w: -color must be auto, always or never", ErrUsage)
	}
	switch fs.NArg() {
	case 0:
	case 1:
		cfg.file = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("%w: at most one input file", ErrUsage)
	}

	return cfg, nil
}

// useColor resolves -color; "auto" colors only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}
