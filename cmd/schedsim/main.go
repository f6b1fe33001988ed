package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vinhtrinh326/schedsim/internal/api"
	"github.com/vinhtrinh326/schedsim/internal/config"
	"github.com/vinhtrinh326/schedsim/internal/input"
	"github.com/vinhtrinh326/schedsim/internal/report"
	"github.com/vinhtrinh326/schedsim/internal/scheduler"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type options struct {
	configPath string
	policy     string
	quantum    int64
	levels     int
	serve      bool
	file       string
}

func parseArgs(args []string) (*options, error) {
	fs := flag.NewFlagSet("schedsim", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	fs.StringVar(&opts.policy, "policy", "", "policy to run (fcfs, sjf, stcf, rr, mlfq, priority or all)")
	fs.Int64Var(&opts.quantum, "quantum", 0, "base time quantum for rr and mlfq")
	fs.IntVar(&opts.levels, "levels", 0, "number of mlfq priority levels")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of printing reports")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	switch {
	case fs.NArg() == 1:
		opts.file = fs.Arg(0)
	case fs.NArg() > 1, fs.NArg() == 0 && !opts.serve:
		return nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	return opts, nil
}

// loadConfig layers flags over the config file.
func loadConfig(opts *options) (*config.SchedulerConfig, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.policy != "" {
		cfg.Policy = opts.policy
	}
	if opts.quantum != 0 {
		cfg.TimeQuantum = opts.quantum
	}
	if opts.levels != 0 {
		cfg.PriorityLevels = opts.levels
	}
	return cfg, cfg.Validate()
}

func run(args []string, w io.Writer) error {
	opts, err := parseArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	if opts.serve {
		log.Printf("serving scheduler API on %s", cfg.Addr)
		return api.NewApp(cfg).Listen(cfg.Addr)
	}

	f, closeFile, err := input.Open(opts.file, func(err error) { log.Print(err) })
	if err != nil {
		return err
	}
	defer closeFile()

	processes, err := input.LoadProcesses(f)
	if err != nil {
		return err
	}

	if cfg.Policy != "all" {
		policy, err := scheduler.ParsePolicy(cfg.Policy)
		if err != nil {
			return err
		}
		r, err := scheduler.Run(policy, processes, cfg.Params())
		if err != nil {
			return err
		}
		report.Write(w, processes, r)
		return nil
	}

	comparisons, err := scheduler.Compare(processes, cfg.Params())
	if err != nil {
		return err
	}
	for _, c := range comparisons {
		report.Write(w, processes, c.Result)
	}
	report.WriteComparison(w, comparisons)
	return nil
}
