// Copyright (c) 2026 Victor Alcazar
//
// MIT License

// Command cuddemo builds a small arithmetic decision diagram and prints its
// truth table, its DOT rendering and the manager statistics. It doubles as a
// smoke test for the library.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valcazar/cudd"
)

type options struct {
	nodesize int
	verbose  bool
	dotfile  string
	timeout  time.Duration
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "cuddemo",
		Short: "Build and display a small arithmetic decision diagram",
		Long: `cuddemo builds the diagram for 2*(x0 xor x1) over two variables,
prints its truth table and the manager statistics, and can write a
GraphViz rendering of the result.

Flags can also be set through environment variables with the CUDD_
prefix, for example CUDD_NODESIZE=1000.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVar(&opts.nodesize, "nodesize", 0, "initial size of the node table")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log internal events")
	cmd.Flags().StringVar(&opts.dotfile, "dot", "", "write a DOT rendering to this file (- for stdout)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "wall-clock budget for the computation")

	v := viper.New()
	v.SetEnvPrefix("CUDD")
	v.AutomaticEnv()
	_ = v.BindPFlags(cmd.Flags())
	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		opts.nodesize = v.GetInt("nodesize")
		opts.verbose = v.GetBool("verbose")
		opts.dotfile = v.GetString("dot")
		opts.timeout = v.GetDuration("timeout")
	}
	return cmd
}

func run(opts *options) error {
	var mopts []cudd.Option
	if opts.nodesize > 0 {
		mopts = append(mopts, cudd.Nodesize(opts.nodesize))
	}
	if opts.verbose {
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		mopts = append(mopts, cudd.Logger(log))
	}
	m, err := cudd.New(2, mopts...)
	if err != nil {
		return err
	}
	defer m.Close()
	if opts.timeout > 0 {
		m.SetDeadline(time.Now().Add(opts.timeout))
	}

	x0, err := m.Ithvar(0)
	if err != nil {
		return err
	}
	x1, err := m.Ithvar(1)
	if err != nil {
		return err
	}
	x, err := m.Apply(x0, x1, cudd.OPxor)
	if err != nil {
		return err
	}
	// adding the function to itself doubles every terminal
	f, err := m.Apply(x, x, cudd.OPplus)
	if err != nil {
		return err
	}

	tbl := table.NewWriter()
	tbl.SetOutputMirror(os.Stdout)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"x0", "x1", "2*(x0 xor x1)"})
	for _, a := range [][]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}} {
		v, err := m.Eval(f, a)
		if err != nil {
			return err
		}
		tbl.AppendRow(table.Row{a[0], a[1], v})
	}
	tbl.Render()

	fmt.Printf("nodes in result: %d\n", m.NodeCount(f))
	m.PrintStats()

	if opts.dotfile != "" {
		if err := m.FDot(opts.dotfile, f); err != nil {
			return err
		}
	}
	return nil
}
