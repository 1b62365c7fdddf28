package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/maseology/mmio"
	gfm "github.com/munterfi/glacier-flow-model"
)

func main() {

	gdefFP := flag.String("gdef", "", "grid definition file of the DEM")
	demFP := flag.String("dem", "", "float32 elevation raster matching the grid definition")
	outdir := flag.String("out", "out", "export directory")
	ela := flag.Float64("ela", 2850., "equilibrium line altitude [m MSL]")
	grad := flag.Float64("m", 0.006, "mass balance gradient [m/m]")
	dt := flag.Float64("dt", 0., "temperature change to simulate once steady [°C]")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	if *gdefFP == "" || *demFP == "" {
		log.Fatalf("usage: run -gdef <file.gdef> -dem <file.bil> [-ela -m -dt -out -seed]")
	}

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nrun complete")

	dem, err := gfm.LoadDEM(*gdefFP, *demFP)
	if err != nil {
		log.Fatalf("%v", err)
	}
	tt.Print("DEM load complete")

	cfg := gfm.DefaultConfig()
	cfg.Ela = *ela
	cfg.Gradient = *grad
	cfg.Seed = *seed
	cfg.Verbose = true

	mdl, err := gfm.New(dem, cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	res := mdl.ReachSteadyState()
	fmt.Println(mdl)
	if !res.SteadyState {
		fmt.Printf(" WARNING steady state was not reached within %d years\n", cfg.MaxYears)
	}

	if *dt != 0. {
		res, err = mdl.Simulate(*dt)
		if err != nil {
			log.Fatalf("%v", err)
		}
		fmt.Printf(" simulated dT = %+.1f°C: ELA %.0f, %d years, steady: %v\n", *dt, res.Ela, res.RunYears, res.SteadyState)
	}

	if err := mdl.Export(*outdir); err != nil {
		log.Fatalf("%v", err)
	}
	tt.Lap("export complete")
}
