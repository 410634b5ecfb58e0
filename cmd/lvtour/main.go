// SPDX-License-Identifier: MIT

// Command lvtour builds an approximate travelling-salesman tour from a minimum
// spanning tree.
//
//	lvtour --points 200 --seed 7 --method kruskal --two-opt
//	lvtour --map maps/diamond.yaml --start 2 --metrics-file lvtour.prom
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/katalvlaran/lvtour/internal/errs"
	"github.com/spf13/afero"
)

// program is the name used in help output and log prefixes.
const program = "lvtour"

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// Env is what Main runs against. Tests swap in buffers and an in-memory fs.
type Env struct {
	Args   []string // full argv, including argv[0]
	Stdout io.Writer
	Stderr io.Writer
	Fs     afero.Fs // map files and the metrics file are read and written here
}

// Main parses the command line and runs the tour builder.
func Main(env *Env) error {
	args := Args{}
	config := arg.Config{
		Program: program,
	}
	parser, err := arg.NewParser(config, &args)
	if err != nil {
		// programming error
		return errs.Context(err, "cli config error")
	}
	err = parser.Parse(env.Args[1:])
	if err == arg.ErrHelp {
		parser.WriteHelp(env.Stdout)
		return nil
	}
	if err == arg.ErrVersion {
		fmt.Fprintf(env.Stdout, "%s\n", version)
		return nil
	}
	if err != nil {
		return errs.Context(err, "cli parse error")
	}

	logger := log.New(env.Stderr, program+": ", log.LstdFlags)
	logf := func(format string, v ...interface{}) {
		if !args.Verbose {
			return
		}
		logger.Printf(format, v...)
	}

	return args.Run(env, logf)
}

func main() {
	env := &Env{
		Args:   os.Args,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Fs:     afero.NewOsFs(),
	}
	if err := Main(env); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %+v\n", program, err)
		os.Exit(1)
	}
}
