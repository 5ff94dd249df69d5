package main

import (
	"fmt"
	"os"

	calc "github.com/rpgo/coastfire-calculator/internal/calculation"
	"github.com/rpgo/coastfire-calculator/internal/config"
	"github.com/rpgo/coastfire-calculator/pkg/decimal"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_coast_age <config-file>")
		return
	}
	cfg, err := config.NewInputParser().LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	in := cfg.Inputs
	base := in.Params(in.CurrentAge)
	fmt.Printf("growth factor %.6f, target %v\n", base.GrowthFactor(), money(calc.PerpetualTarget(base)))
	for _, w := range calc.Warnings(in) {
		fmt.Println("warning:", w)
	}

	fmt.Printf("%-5s %16s %16s %s\n", "age", "required", "coasting", "covered")
	for _, age := range cfg.Settings.AgeSeries(in.CurrentAge) {
		p := base.WithRetirementAge(age)
		req, reqOK := calc.RequiredAssets(p)
		coast, coastOK := calc.CoastingAssets(p)
		covered := reqOK && in.CurrentAssets >= req
		fmt.Printf("%-5d %16s %16s %v\n", age, money(req, reqOK), money(coast, coastOK), covered)
	}

	a1, ok1 := calc.FindCoastAgeIn(cfg.Settings.AgeSeries(in.CurrentAge), base)
	a2, ok2 := calc.FindCoastAgeByFutureValueIn(cfg.Settings.AgeSeries(in.CurrentAge), base)
	fmt.Printf("coast age (required today): %d %v\n", a1, ok1)
	fmt.Printf("coast age (future value):   %d %v\n", a2, ok2)
}

func money(v float64, ok bool) string {
	if !ok {
		return "-"
	}
	return decimal.NewMoney(v).Format()
}
