package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pavanmanishd/bnctx"
	"github.com/pavanmanishd/bnctx/internal/calc"
	"github.com/pavanmanishd/bnctx/internal/logger"
)

// Main entry point for the modular exponentiation tool.
func main() {
	var (
		help       bool
		verbose    bool
		noColor    bool
		stats      bool
		configPath string
	)
	flag.BoolVar(&help, "h", false, "Show help")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&noColor, "n", false, "No color")
	flag.BoolVar(&stats, "stats", false, "Print context metrics after the computation")
	flag.StringVar(&configPath, "config", "", "TOML file with context settings")
	flag.Parse()
	args := flag.Args()

	if help {
		fmt.Printf("Usage: %s [options] <base> <exponent> <modulus>\n", os.Args[0])
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	cfg := bnctx.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = bnctx.LoadConfig(configPath)
		if err != nil {
			logger.Init("error", verbose, noColor)
			log.Fatal("Could not load config", "error", err)
		}
	}
	logger.Init(cfg.LogLevel, verbose, noColor)

	if len(args) != 3 {
		log.Fatal("Expected base, exponent and modulus", "help", fmt.Sprintf("%s -h", os.Args[0]))
	}
	nums := make([]*big.Int, len(args))
	for i, s := range args {
		n, ok := new(big.Int).SetString(s, 0)
		if !ok {
			log.Fatal("Not an integer", "arg", s)
		}
		nums[i] = n
	}

	ctx := bnctx.NewBig(
		bnctx.WithConfig(cfg),
		bnctx.WithLogger(log.Default()),
		bnctx.WithErrorQueue(bnctx.NewQueue(log.Default())),
	)
	defer ctx.Release()

	r, err := calc.ModExp(ctx, nums[0], nums[1], nums[2])
	if err != nil {
		log.Fatal("Computation failed", "error", err)
	}
	fmt.Println(r.String())

	if stats {
		m := ctx.Metrics()
		fmt.Printf("pool: %d\npeak: %d\nmarker capacity: %d\n", m.PoolSize, m.PeakUsed, m.MarkerCapacity)
	}
}
