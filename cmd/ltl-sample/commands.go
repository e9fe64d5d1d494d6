package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/scott-cotton/cli"

	"github.com/hsp-iit/learn-ltl/ltl"
	"github.com/hsp-iit/learn-ltl/sample"
	"github.com/hsp-iit/learn-ltl/trace"
)

// Config mirrors src/sampler/main.rs's positives/negatives/length
// parameters, made configurable instead of hard-coded, plus an output
// path and random seed the original didn't expose.
type Config struct {
	Cmd *cli.Command

	Positives int    `cli:"name=positives desc='number of positive traces to collect' default=100"`
	Negatives int    `cli:"name=negatives desc='number of negative traces to collect' default=100"`
	Length    int    `cli:"name=length desc='length of each generated trace' default=10"`
	Out       string `cli:"name=out desc='output path (.ron or .json); defaults to sample_<formula>.ron'"`
	Seed      int64  `cli:"name=seed desc='random seed; 0 picks a time-based seed'"`
}

// SampleCommand builds the ltl-sample command: draw random traces
// against a formula given on the command line until enough of each
// polarity are collected, then persist the result with package sample.
func SampleCommand() *cli.Command {
	cfg := &Config{Positives: 100, Negatives: 100, Length: 10}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "ltl-sample").
		WithSynopsis("ltl-sample [opts] <formula>").
		WithDescription("ltl-sample generates a labelled sample of random traces for a formula.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runSample(cfg, cc, args)
		})
}

func runSample(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: ltl-sample takes exactly one formula argument", cli.ErrUsage)
	}
	f, err := ltl.Parse(args[0], nil)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	n := maxVar(f) + 1
	s := sample.New(n, nil)
	for len(s.Positive) < cfg.Positives || len(s.Negative) < cfg.Negatives {
		tr := randomTrace(rng, n, cfg.Length)
		sat := ltl.Eval(f, tr)
		switch {
		case sat && len(s.Positive) < cfg.Positives:
			_ = s.AddPositive(tr)
		case !sat && len(s.Negative) < cfg.Negatives:
			_ = s.AddNegative(tr)
		}
	}

	out := cfg.Out
	if out == "" {
		out = fmt.Sprintf("sample_%s.ron", f)
	}
	if err := sample.Save(out, s); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "wrote %s (%d positive, %d negative)\n", out, len(s.Positive), len(s.Negative))
	return nil
}

// maxVar returns the highest atom variable index referenced by f, or -1
// if f has no atoms (which cannot happen for a well-formed formula).
func maxVar(f *ltl.Formula) int {
	max := -1
	var walk func(*ltl.Formula)
	walk = func(n *ltl.Formula) {
		if n == nil {
			return
		}
		if n.Kind == ltl.KindAtom && n.Var > max {
			max = n.Var
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(f)
	return max
}

func randomTrace(rng *rand.Rand, n, length int) trace.Trace {
	tr := make(trace.Trace, length)
	for i := range tr {
		bits := make([]bool, n)
		for j := range bits {
			bits[j] = rng.Intn(2) == 1
		}
		tr[i] = trace.NewValuation(bits)
	}
	return tr
}
