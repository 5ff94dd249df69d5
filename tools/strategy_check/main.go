package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
)

// Sweeps current assets and reports any input where the two coast-age
// strategies disagree.
func main() {
	from := flag.Float64("from", 0, "first asset level")
	to := flag.Float64("to", 2000000, "last asset level")
	step := flag.Float64("step", 1000, "asset increment")
	flag.Parse()

	in := config.DefaultInputs()
	disagreements := 0
	for assets := *from; assets <= *to; assets += *step {
		in.CurrentAssets = assets
		p := in.Params(in.CurrentAge)
		a1, ok1 := calculation.FindCoastAge(p)
		a2, ok2 := calculation.FindCoastAgeByFutureValue(p)
		if a1 != a2 || ok1 != ok2 {
			disagreements++
			fmt.Printf("assets %.2f: required-today %d/%v, future-value %d/%v\n", assets, a1, ok1, a2, ok2)
		}
	}
	fmt.Printf("%d disagreements\n", disagreements)
	if disagreements > 0 {
		os.Exit(1)
	}
}
