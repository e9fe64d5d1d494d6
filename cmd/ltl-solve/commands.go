package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"go.uber.org/zap"

	"github.com/hsp-iit/learn-ltl/display"
	"github.com/hsp-iit/learn-ltl/sample"
	"github.com/hsp-iit/learn-ltl/search"
)

// Config holds ltl-solve's command-line options, populated by
// cli.StructOpts from the cli struct tags below, in the same shape as
// the teacher's MainConfig.
type Config struct {
	Cmd *cli.Command

	Parallel bool `cli:"name=parallel desc='evaluate candidates within a size concurrently'"`
	MaxSize  int  `cli:"name=maxSize desc='bound the search to this many sizes; 0 means unbounded'"`
	Workers  int  `cli:"name=workers desc='parallel worker count; 0 means GOMAXPROCS'"`
	Verbose  bool `cli:"name=v aliases=verbose desc='log one line per search size to stderr'"`
	Color    bool `cli:"name=color desc='force colored formula output, even when not a terminal'"`
	Diag     bool `cli:"name=diag desc='start a gops diagnostics agent for this process'"`
}

// SolveCommand builds the ltl-solve command: a single leaf command (no
// subcommands), in the shape of the teacher's simplest commands (get,
// list) rather than its command trees (o, system).
func SolveCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, "ltl-solve").
		WithSynopsis("ltl-solve [opts] <sample-file>").
		WithDescription("ltl-solve finds the minimum-size LTL formula consistent with a labelled sample (.ron or .json).").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return solve(cfg, cc, args)
		})
}

func solve(cfg *Config, cc *cli.Context, args []string) error {
	args, err := cfg.Cmd.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: ltl-solve takes exactly one sample file argument", cli.ErrUsage)
	}

	if cfg.Diag {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
	}

	s, err := sample.Load(args[0])
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if cfg.Verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	d := &search.Driver{
		Parallel: cfg.Parallel,
		MaxSize:  cfg.MaxSize,
		Workers:  cfg.Workers,
		Logger:   logger,
	}
	f, ok, err := d.Search(s)
	if err != nil {
		return err
	}

	colors := display.AutoColors(cc.Out)
	if cfg.Color {
		color.NoColor = false
		colors = display.NewColors()
	}
	if !ok {
		fmt.Fprintln(cc.Out, "No solution found")
		return nil
	}
	fmt.Fprintf(cc.Out, "Solution: %s\n", display.Formula(colors, f, s.Names))
	return nil
}
