// Command physimdemo wires a tiny scene end to end and runs it for a
// fixed number of steps, the way gazed-vu's eg/ example programs
// exercise the engine rather than provide a general front-end.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/lluisalemanypuig/physim/geometry"
	"github.com/lluisalemanypuig/physim/math/lin"
	"github.com/lluisalemanypuig/physim/simulator"
)

func main() {
	steps := flag.Int("steps", 300, "number of simulation steps to run")
	flag.Parse()

	sim := simulator.New()
	sim.SetGravity(lin.V3{Y: -9.8})

	floor, err := geometry.NewPlane(lin.V3{Y: 1}, lin.V3{})
	if err != nil {
		log.Fatalf("physimdemo: building floor: %v", err)
	}
	sim.AddGeometry(floor)

	sim.AddFree()
	p := sim.Free[0]
	p.CurPos = lin.V3{Y: 5}
	p.PrevPos = p.CurPos
	p.Bouncing = 0.6

	for i := 0; i < *steps; i++ {
		sim.Step()
	}

	fmt.Printf("after %d steps: pos=%v vel=%v\n", *steps, p.CurPos, p.CurVel)
}
