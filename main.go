package main

import (
	"github.com/alecthomas/kong"
)

var cli struct {
	View viewCmd `cmd:"" default:"withargs" help:"Interactive terminal visualizer (default)."`
	Run  runCmd  `cmd:"" help:"Headless tunneling run with a convergence report."`
}

type viewCmd struct {
	Energy    float64 `help:"Particle energy E in eV." default:"5"`
	Barrier   float64 `help:"Barrier height V0 in eV." default:"8"`
	Width     float64 `help:"Barrier width L in nm." default:"1.5"`
	Mass      float64 `help:"Particle mass multiplier." default:"1"`
	Intensity float64 `help:"Spawn intensity in particles per second." default:"6"`
	Seed      int64   `help:"Random seed; 0 seeds from the clock." default:"0"`
}

func (c *viewCmd) Run() error {
	a, err := newApp(c)
	if err != nil {
		return err
	}
	defer a.cleanup()
	a.run()
	return nil
}

type runCmd struct {
	Particles int     `help:"Number of particles to resolve." default:"5000"`
	Energy    float64 `help:"Particle energy E in eV." default:"5"`
	Barrier   float64 `help:"Barrier height V0 in eV." default:"5.1"`
	Width     float64 `help:"Barrier width L in nm." default:"0.37"`
	Mass      float64 `help:"Particle mass multiplier." default:"1"`
	Seed      int64   `help:"Random seed; 0 seeds from the clock." default:"0"`
}

func (c *runCmd) Run() error {
	return runHeadless(c)
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("quantaterm"),
		kong.Description("Interactive terminal visualizations of quantum tunneling, interference, and hydrogen orbitals."),
	)
	ctx.FatalIfErrorf(ctx.Run())
}
