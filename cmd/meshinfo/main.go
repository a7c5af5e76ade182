// Command meshinfo prints finite-difference grids and the operator bands
// built on them.
//
// Usage:
//
//	meshinfo [flags] [mesher-name ...]
//
// Without arguments it prints the uniform mesher.
//
// Examples:
//
//	meshinfo -size 11 uniform concentrating
//	meshinfo -size 21 -point 100 -density 0.1 blackscholes
//	meshinfo -size 7 -op dxx uniform
//	meshinfo -size 41 -point 0.3 -plot grid.png uniform concentrating
//	meshinfo -config grid.yaml
//	meshinfo -list
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-fdm/fdm/core"
	"github.com/cwbudde/algo-fdm/fdm/mesher"
	"github.com/cwbudde/algo-fdm/fdm/model"
	"github.com/cwbudde/algo-fdm/fdm/operator"
)

type params struct {
	size       int
	start, end float64
	point      float64
	density    float64
	spot       float64
	strike     float64
	maturity   float64
	rate       float64
	dividend   float64
	vol        float64
}

type mesherEntry struct {
	name  string
	about string
	build func(p params) (mesher.Mesher1D, error)
}

var registry = []mesherEntry{
	{"uniform", "equidistant nodes on [start, end]", func(p params) (mesher.Mesher1D, error) {
		return mesher.NewUniform(p.start, p.end, p.size)
	}},
	{"concentrating", "sinh-concentrated nodes around -point", func(p params) (mesher.Mesher1D, error) {
		var opts []mesher.ConcentratingOption
		if !math.IsNaN(p.point) {
			opts = append(opts, mesher.WithConcentration(p.point, p.density))
		}
		return mesher.NewConcentrating(p.start, p.end, p.size, opts...)
	}},
	{"multi-concentrating", "ODE-driven nodes concentrated around -point", func(p params) (mesher.Mesher1D, error) {
		var points []mesher.ConcentrationPoint
		if !math.IsNaN(p.point) {
			points = append(points, mesher.ConcentrationPoint{Point: p.point, Density: p.density, Required: true})
		}
		return mesher.NewMultiConcentrating(p.start, p.end, p.size, points)
	}},
	{"blackscholes", "log-spot mesher sized from the Black-Scholes process", func(p params) (mesher.Mesher1D, error) {
		process := model.NewFlatBlackScholes(p.spot, p.rate, p.dividend, p.vol)
		var opts []mesher.BlackScholesOption
		if !math.IsNaN(p.point) {
			opts = append(opts, mesher.WithConcentrationPoint(p.point, p.density))
		}
		return mesher.NewBlackScholes(p.size, process, p.maturity, p.strike, opts...)
	}},
}

func main() {
	var p params
	flag.IntVar(&p.size, "size", 11, "number of grid nodes")
	flag.Float64Var(&p.start, "start", 0, "lower end of the grid")
	flag.Float64Var(&p.end, "end", 1, "upper end of the grid")
	flag.Float64Var(&p.point, "point", math.NaN(), "concentration point")
	flag.Float64Var(&p.density, "density", 0.1, "concentration density")
	flag.Float64Var(&p.spot, "spot", 100, "spot for the blackscholes mesher")
	flag.Float64Var(&p.strike, "strike", 100, "strike for the blackscholes mesher")
	flag.Float64Var(&p.maturity, "maturity", 1, "maturity in years")
	flag.Float64Var(&p.rate, "rate", 0.05, "risk-free rate")
	flag.Float64Var(&p.dividend, "div", 0, "dividend yield")
	flag.Float64Var(&p.vol, "vol", 0.2, "volatility")
	op := flag.String("op", "", "also print operator rows: dx, dxx or bs")
	list := flag.Bool("list", false, "list available mesher names")
	plotPath := flag.String("plot", "", "write a node spacing plot to this file (png, svg or pdf)")
	configPath := flag.String("config", "", "read mesher parameters from a YAML file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: meshinfo [flags] [mesher-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the nodes of 1D finite-difference meshers.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints the uniform mesher.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -size 11 uniform concentrating\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -size 21 -point 100 -density 0.1 blackscholes\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -size 7 -op dxx uniform\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -size 41 -point 0.3 -plot grid.png uniform concentrating\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -config grid.yaml\n")
		fmt.Fprintf(os.Stderr, "  meshinfo -list\n")
	}
	flag.Parse()

	names := flag.Args()
	if *configPath != "" {
		var err error
		names, err = applyConfig(flag.CommandLine, os.Args[1:], *configPath, &p, op)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *list {
		printList(os.Stdout)
		return
	}

	if len(names) == 0 {
		names = []string{"uniform"}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching meshers\n")
		os.Exit(1)
	}

	failed := false
	var built []namedMesher
	for _, e := range entries {
		m, err := e.build(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
			failed = true
			continue
		}
		built = append(built, namedMesher{e.name, m})
		fmt.Printf("# %s (%d nodes)\n", e.name, m.Size())
		if err := printNodes(os.Stdout, m); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write nodes: %v\n", err)
			os.Exit(1)
		}
		if *op != "" {
			if err := printOperator(os.Stdout, m, *op, p); err != nil {
				fmt.Fprintf(os.Stderr, "error: %s: %v\n", e.name, err)
				failed = true
			}
		}
		fmt.Println()
	}
	if *plotPath != "" && len(built) > 0 {
		if err := savePlot(*plotPath, built); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write plot: %v\n", err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	entries := append([]mesherEntry(nil), registry...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
	for _, e := range entries {
		fmt.Fprintf(w, "%-20s %s\n", e.name, e.about)
	}
}

func resolveEntries(names []string) []mesherEntry {
	byName := make(map[string]mesherEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []mesherEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown mesher %q (use -list to see available)\n", name)
			continue
		}
		result = append(result, e)
	}
	return result
}

func printNodes(w io.Writer, m mesher.Mesher1D) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "i\tx\tdminus\tdplus\n-\t-\t------\t-----\n"); err != nil {
		return err
	}
	for i := range m.Size() {
		if _, err := fmt.Fprintf(tw, "%d\t%.8f\t%s\t%s\n", i, m.Location(i), spacing(m.Dminus(i)), spacing(m.Dplus(i))); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// spacing formats a node distance, printing "-" where none exists.
func spacing(d float64) string {
	if core.IsUndefined(d) {
		return "-"
	}
	return fmt.Sprintf("%.8f", d)
}

func buildOperator(m mesher.Mesher1D, name string, p params) (*operator.TripleBand, error) {
	c, err := mesher.NewComposite(m)
	if err != nil {
		return nil, err
	}

	switch name {
	case "dx":
		return operator.NewFirstDerivative(0, c)
	case "dxx":
		return operator.NewSecondDerivative(0, c)
	case "bs":
		process := model.NewFlatBlackScholes(p.spot, p.rate, p.dividend, p.vol)
		bs, err := operator.NewBlackScholesOp(c, process, p.strike)
		if err != nil {
			return nil, err
		}
		if err := bs.SetTime(0, p.maturity); err != nil {
			return nil, err
		}
		return bs.Map(), nil
	default:
		return nil, fmt.Errorf("unknown operator %q", name)
	}
}

func printOperator(w io.Writer, m mesher.Mesher1D, name string, p params) error {
	band, err := buildOperator(m, name, p)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "\n%s row\tlower\tdiag\tupper\n------\t-----\t----\t-----\n", name); err != nil {
		return err
	}
	for i := range band.Size() {
		lower, diag, upper := band.Row(i)
		if _, err := fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t%.6g\n", i, lower, diag, upper); err != nil {
			return err
		}
	}
	return tw.Flush()
}
