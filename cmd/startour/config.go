package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/jinzhu/copier"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/startour/sweep"
	"github.com/katalvlaran/startour/tsp"
)

// RunConfig is the on-disk form of a run:
//
//	algo = "aco"
//	iterations = 1000
//	seed = 42
//
//	[aco]
//	alpha = 1.0
//	beta = 2.0
//
//	[ga]
//	population = 30
//	mutation = "composite"
//
//	[sweep]
//	rho = [0.1, 0.5, 0.9]
//	replications = 5
type RunConfig struct {
	Algo            string  `toml:"algo"`
	Iterations      int     `toml:"iterations"`
	Target          float64 `toml:"target"`
	Seed            int64   `toml:"seed"`
	Start           int     `toml:"start"`
	Workers         int     `toml:"workers"`
	ReportEvery     int     `toml:"report_every"`
	CheckInvariants bool    `toml:"check_invariants"`
	LocalSearch     bool    `toml:"local_search"`
	TwoOptMaxMoves  int     `toml:"two_opt_max_moves"`

	ACO   ACOConfig   `toml:"aco"`
	GA    GAConfig    `toml:"ga"`
	Sweep SweepConfig `toml:"sweep"`
}

// ACOConfig is the [aco] table.
type ACOConfig struct {
	Ants             int     `toml:"ants"`
	Alpha            float64 `toml:"alpha"`
	Beta             float64 `toml:"beta"`
	Rho              float64 `toml:"rho"`
	Q                float64 `toml:"q"`
	InitialPheromone float64 `toml:"initial_pheromone"`
	RandomStart      bool    `toml:"random_start"`
}

// GAConfig is the [ga] table.
type GAConfig struct {
	Population   int     `toml:"population"`
	MutationRate float64 `toml:"mutation_rate"`
	Mutation     string  `toml:"mutation"`
	Elitism      int     `toml:"elitism"`
}

// SweepConfig is the [sweep] table: one list of values per swept parameter.
// Field names match sweep.Grid.
type SweepConfig struct {
	Alpha        []float64 `toml:"alpha"`
	Beta         []float64 `toml:"beta"`
	Rho          []float64 `toml:"rho"`
	Q            []float64 `toml:"q"`
	Ants         []int     `toml:"ants"`
	Population   []int     `toml:"population"`
	MutationRate []float64 `toml:"mutation_rate"`
	Replications int       `toml:"replications"`
}

// DefaultRunConfig mirrors tsp.DefaultOptions.
func DefaultRunConfig() RunConfig {
	d := tsp.DefaultOptions()

	return RunConfig{
		Algo:            d.Algo.String(),
		Iterations:      d.MaxIterations,
		Target:          d.TargetLength,
		Seed:            d.Seed,
		Start:           d.StartVertex,
		Workers:         d.Workers,
		ReportEvery:     d.ReportEvery,
		CheckInvariants: d.CheckInvariants,
		LocalSearch:     d.LocalSearch,
		TwoOptMaxMoves:  d.TwoOptMaxMoves,
		ACO: ACOConfig{
			Ants:             d.ACO.Ants,
			Alpha:            d.ACO.Alpha,
			Beta:             d.ACO.Beta,
			Rho:              d.ACO.Rho,
			Q:                d.ACO.Q,
			InitialPheromone: d.ACO.InitialPheromone,
			RandomStart:      d.ACO.RandomStart,
		},
		GA: GAConfig{
			Population:   d.GA.PopulationSize,
			MutationRate: d.GA.MutationRate,
			Mutation:     d.GA.Mutation.String(),
			Elitism:      d.GA.Elitism,
		},
	}
}

// DecodeFile overlays the TOML file at path onto c. Keys absent from the
// file keep their current value; unknown keys are an error.
func (c *RunConfig) DecodeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	md, err := toml.NewDecoder(f).Decode(c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}

	return nil
}

// Options converts c into solver options. The result is not validated.
func (c RunConfig) Options() (tsp.Options, error) {
	algo, err := tsp.ParseAlgorithm(c.Algo)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("algo %q: %w", c.Algo, err)
	}
	mut, err := tsp.ParseMutationOperator(c.GA.Mutation)
	if err != nil {
		return tsp.Options{}, fmt.Errorf("ga.mutation %q: %w", c.GA.Mutation, err)
	}

	opts := tsp.DefaultOptions()
	opts.Algo = algo
	opts.MaxIterations = c.Iterations
	opts.TargetLength = c.Target
	opts.Seed = c.Seed
	opts.StartVertex = c.Start
	opts.Workers = c.Workers
	opts.ReportEvery = c.ReportEvery
	opts.CheckInvariants = c.CheckInvariants
	opts.LocalSearch = c.LocalSearch
	opts.TwoOptMaxMoves = c.TwoOptMaxMoves
	opts.ACO = tsp.ACOOptions{
		Ants:             c.ACO.Ants,
		Alpha:            c.ACO.Alpha,
		Beta:             c.ACO.Beta,
		Rho:              c.ACO.Rho,
		Q:                c.ACO.Q,
		InitialPheromone: c.ACO.InitialPheromone,
		RandomStart:      c.ACO.RandomStart,
	}
	opts.GA = tsp.GAOptions{
		PopulationSize: c.GA.Population,
		MutationRate:   c.GA.MutationRate,
		Mutation:       mut,
		Elitism:        c.GA.Elitism,
	}

	return opts, nil
}

// Grid converts the [sweep] table. The axes are deep copies, so the grid
// never shares backing arrays with the config.
func (c RunConfig) Grid() (sweep.Grid, error) {
	var g sweep.Grid
	if err := copier.CopyWithOption(&g, &c.Sweep, copier.Option{DeepCopy: true}); err != nil {
		return sweep.Grid{}, fmt.Errorf("sweep config: %w", err)
	}

	return g, nil
}

// addRunFlags registers the solver flags. Defaults are informational only:
// applyRunFlags copies a flag into the config only when it was set.
func addRunFlags(fs *pflag.FlagSet) {
	d := DefaultRunConfig()

	fs.String("algo", d.Algo, "solver: aco, ga or nn")
	fs.Int("iterations", d.Iterations, "iteration / generation cap")
	fs.Float64("target", d.Target, "stop once the best length drops below this (0 = never)")
	fs.Int64("seed", d.Seed, "random seed (0 = fixed default)")
	fs.Int("start", d.Start, "start point index (0-based)")
	fs.Int("workers", d.Workers, "goroutines for ant construction / breeding (0 or 1 runs inline)")
	fs.Int("report-every", d.ReportEvery, "log progress every k iterations (0 = off)")
	fs.Bool("check", d.CheckInvariants, "validate every produced tour")
	fs.Bool("local-search", d.LocalSearch, "polish the final tour with 2-opt")
	fs.Int("two-opt-max-moves", d.TwoOptMaxMoves, "cap on improving 2-opt moves (0 = until local optimum)")

	fs.Int("ants", d.ACO.Ants, "ants per iteration (0 = one per point)")
	fs.Float64("alpha", d.ACO.Alpha, "pheromone exponent")
	fs.Float64("beta", d.ACO.Beta, "visibility exponent")
	fs.Float64("rho", d.ACO.Rho, "evaporation rate in [0, 1]")
	fs.Float64("q", d.ACO.Q, "deposit constant")
	fs.Float64("initial-pheromone", d.ACO.InitialPheromone, "starting pheromone on every edge")
	fs.Bool("random-start", d.ACO.RandomStart, "start each ant at a random point")

	fs.Int("population", d.GA.Population, "GA population size")
	fs.Float64("mutation-rate", d.GA.MutationRate, "per-child mutation probability")
	fs.String("mutation", d.GA.Mutation, "mutation operator: composite, reverse or swap")
	fs.Int("elitism", d.GA.Elitism, "individuals copied unchanged into the next generation")
}

// applyRunFlags copies every flag the user set onto c.
func applyRunFlags(fs *pflag.FlagSet, c *RunConfig) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "algo":
			c.Algo, err = fs.GetString(f.Name)
		case "iterations":
			c.Iterations, err = fs.GetInt(f.Name)
		case "target":
			c.Target, err = fs.GetFloat64(f.Name)
		case "seed":
			c.Seed, err = fs.GetInt64(f.Name)
		case "start":
			c.Start, err = fs.GetInt(f.Name)
		case "workers":
			c.Workers, err = fs.GetInt(f.Name)
		case "report-every":
			c.ReportEvery, err = fs.GetInt(f.Name)
		case "check":
			c.CheckInvariants, err = fs.GetBool(f.Name)
		case "local-search":
			c.LocalSearch, err = fs.GetBool(f.Name)
		case "two-opt-max-moves":
			c.TwoOptMaxMoves, err = fs.GetInt(f.Name)
		case "ants":
			c.ACO.Ants, err = fs.GetInt(f.Name)
		case "alpha":
			c.ACO.Alpha, err = fs.GetFloat64(f.Name)
		case "beta":
			c.ACO.Beta, err = fs.GetFloat64(f.Name)
		case "rho":
			c.ACO.Rho, err = fs.GetFloat64(f.Name)
		case "q":
			c.ACO.Q, err = fs.GetFloat64(f.Name)
		case "initial-pheromone":
			c.ACO.InitialPheromone, err = fs.GetFloat64(f.Name)
		case "random-start":
			c.ACO.RandomStart, err = fs.GetBool(f.Name)
		case "population":
			c.GA.Population, err = fs.GetInt(f.Name)
		case "mutation-rate":
			c.GA.MutationRate, err = fs.GetFloat64(f.Name)
		case "mutation":
			c.GA.Mutation, err = fs.GetString(f.Name)
		case "elitism":
			c.GA.Elitism, err = fs.GetInt(f.Name)
		}
	})

	return err
}
