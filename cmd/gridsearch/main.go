// Command gridsearch solves grid path-finding puzzles from input files.
//
//	gridsearch maze      -in FILE [-turn 1000] [-tiles]
//	gridsearch shortcuts -in FILE [-allowance 2] [-min 100] [-radius]
//	gridsearch obstacles -in FILE [-size 71] [-bytes 1024] [-blocking]
//
// Each subcommand prints one result line. -v enables debug logging.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/gridgraph"
	"github.com/katalvlaran/gridsearch/input"
	"github.com/katalvlaran/gridsearch/obstacles"
	"github.com/katalvlaran/gridsearch/shortcut"
)

var log = logrus.New()

var errUsage = errors.New("usage: gridsearch maze|shortcuts|obstacles -in FILE [flags]")

func main() {
	log.SetOutput(os.Stderr)
	err := run(os.Args[1:], os.Stdout)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		fmt.Fprintln(os.Stderr, usageText())
	default:
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usageText())
		}
		log.WithError(err).Error("gridsearch failed")
		os.Exit(1)
	}
}

// run dispatches to a subcommand and writes its result line to out.
func run(args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmds := map[string]func([]string, io.Writer) error{
		"maze":      runMaze,
		"shortcuts": runShortcuts,
		"obstacles": runObstacles,
	}
	cmd, ok := cmds[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
	}
	return cmd(args[1:], out)
}

// common holds flags shared by every subcommand.
type common struct {
	in      string
	verbose bool
}

func newFlagSet(name string, c *common) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&c.in, "in", "", "input file")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	return fs
}

func (c *common) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	if c.in == "" {
		return fmt.Errorf("%w: %s needs -in", errUsage, fs.Name())
	}
	log.SetLevel(logrus.InfoLevel)
	if c.verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// loadGrid reads a marked grid from path.
func loadGrid(path string) (*gridgraph.Grid, error) {
	text, err := input.ReadString(path)
	if err != nil {
		return nil, err
	}
	return gridgraph.Parse(text, gridgraph.GridOptions{RequireMarkers: true})
}

func runMaze(args []string, out io.Writer) error {
	var c common
	fs := newFlagSet("maze", &c)
	turn := fs.Int64("turn", dijkstra.DefaultTurnCost, "cost of a 90° turn")
	tiles := fs.Bool("tiles", false, "also report the number of optimal tiles")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	g, err := loadGrid(c.in)
	if err != nil {
		return err
	}
	opts := []dijkstra.Option{dijkstra.WithTurnCost(*turn)}
	if !*tiles {
		opts = append(opts, dijkstra.WithoutTiles())
	}

	began := time.Now()
	res, err := dijkstra.Solve(g, opts...)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"width":    g.Width(),
		"height":   g.Height(),
		"expanded": res.Expanded,
		"elapsed":  time.Since(began),
	}).Debug("maze solved")

	if !res.Found {
		_, err = fmt.Fprintln(out, "no path")
		return err
	}
	if *tiles {
		_, err = fmt.Fprintf(out, "score=%d tiles=%d\n", res.Cost, res.TileCount())
		return err
	}
	_, err = fmt.Fprintf(out, "score=%d\n", res.Cost)
	return err
}

func runShortcuts(args []string, out io.Writer) error {
	var c common
	fs := newFlagSet("shortcuts", &c)
	allowance := fs.Int("allowance", 2, "maximum moves per shortcut")
	min := fs.Int("min", 100, "minimum savings to report")
	radius := fs.Bool("radius", false, "ignore walls within the allowance")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	g, err := loadGrid(c.in)
	if err != nil {
		return err
	}
	strategy := shortcut.StrategyPhase
	if *radius {
		strategy = shortcut.StrategyRadius
	}

	began := time.Now()
	res, err := shortcut.Solve(g,
		shortcut.WithAllowance(*allowance),
		shortcut.WithMinSavings(*min),
		shortcut.WithStrategy(strategy),
	)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"strategy": strategy,
		"path":     res.Length(),
		"elapsed":  time.Since(began),
	}).Debug("shortcuts enumerated")

	_, err = fmt.Fprintf(out, "shortcuts=%d\n", res.Count())
	return err
}

func runObstacles(args []string, out io.Writer) error {
	var c common
	fs := newFlagSet("obstacles", &c)
	size := fs.Int("size", 71, "side length of the square region")
	n := fs.Int("bytes", 1024, "number of obstacles landed before walking")
	blocking := fs.Bool("blocking", false, "report the first obstacle that cuts every route")
	if err := c.parse(fs, args); err != nil {
		return err
	}

	f, err := os.Open(c.in)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", input.ErrFileUnreadable, c.in, err)
	}
	defer f.Close()
	coords, err := obstacles.ParseCoordinates(f)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"size": *size, "obstacles": len(coords)}).Debug("coordinates loaded")

	if *blocking {
		_, p, ok, err := obstacles.FirstBlocking(*size, coords)
		if err != nil {
			return err
		}
		if !ok {
			_, err = fmt.Fprintln(out, "never blocked")
			return err
		}
		_, err = fmt.Fprintf(out, "%d,%d\n", p.Col, p.Row)
		return err
	}

	if *n > len(coords) {
		log.WithFields(logrus.Fields{"bytes": *n, "available": len(coords)}).Warn("fewer obstacles than requested")
		*n = len(coords)
	}
	d, ok, err := obstacles.MinSteps(*size, coords, *n)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintln(out, "no path")
		return err
	}
	_, err = fmt.Fprintf(out, "steps=%d\n", d)
	return err
}

// usageText is printed for -h.
func usageText() string {
	return strings.TrimSpace(`
gridsearch maze      -in FILE [-turn 1000] [-tiles]
gridsearch shortcuts -in FILE [-allowance 2] [-min 100] [-radius]
gridsearch obstacles -in FILE [-size 71] [-bytes 1024] [-blocking]`)
}
