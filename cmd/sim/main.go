package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joripage/matchsim/config"
	"github.com/joripage/matchsim/pkg/logging"
	"github.com/joripage/matchsim/pkg/market"
	"github.com/joripage/matchsim/pkg/market/rule"
	"github.com/joripage/matchsim/pkg/sim"
)

func main() {
	configPath := flag.String("config", "./config/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	log := logging.NewLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	rules := []rule.Rule{&rule.QuantityRule{}}
	if len(cfg.PriceBands) > 0 {
		rules = append(rules, &rule.PriceBandRule{Bands: cfg.PriceBands})
	}
	if cfg.TickRuleFile != "" {
		tick, err := rule.NewTickSizeRuleFromFile(cfg.TickRuleFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load tick rules:", err)
			os.Exit(1)
		}
		rules = append(rules, tick)
	}

	mgr := market.NewManager(&market.Config{Rules: rules}, log)

	scenario, err := sim.LoadScenario(cfg.ScenarioFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load scenario:", err)
		os.Exit(1)
	}

	// Ctrl+C stops the run and still prints the partial report
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logging.WithRunID(ctx, "")

	runner := sim.NewRunner(mgr, log)
	runner.Enqueue(scenario.Steps...)

	report, err := runner.Run(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "run interrupted:", err)
	}

	fmt.Printf("scenario %q: submitted=%d rejected=%d trades=%d\n",
		scenario.Name, report.Submitted, report.Rejected, report.Trades)
	for _, instrument := range report.Instruments() {
		s := report.ByInstrument[instrument]
		if s.Trades == 0 {
			fmt.Printf("  %s: no trades\n", instrument)
			continue
		}
		fmt.Printf("  %s: trades=%d volume=%d vwap=%s high=%d low=%d last=%d\n",
			instrument, s.Trades, s.Volume, s.VWAP.StringFixed(2), s.High, s.Low, s.Last)
	}
}
