// Command bigmin reads numbers, one per line, and prints the smallest of them.
// With --float the numbers are floating-point values instead of BigInts.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/napalu/goopt/v2"
	"github.com/rbrabson/bigmin/pkg/config"
	"github.com/rbrabson/bigmin/pkg/format"
	"github.com/rbrabson/bigmin/pkg/input"
	log "github.com/sirupsen/logrus"
)

// Options are the command-line flags. Flags that are set override the
// environment configuration.
type Options struct {
	Input    string `goopt:"name:input;short:i;desc:File to read the numbers from (default stdin)"`
	Locale   string `goopt:"name:locale;short:l;desc:Locale used to format digit counts"`
	LogLevel string `goopt:"name:log-level;desc:Log level (trace, debug, info, warn, error)"`
	Table    bool   `goopt:"name:table;short:t;desc:Print a table describing the digits of each number"`
	Float    bool   `goopt:"name:float;short:f;desc:Read floating-point numbers instead of digit lists"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the exit code.
func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	log.SetOutput(stderr)
	cfg := config.Load()

	opts := &Options{}
	parser, err := goopt.NewParserFromStruct(opts)
	if err != nil {
		log.Error("Unable to create the command-line parser, error:", err)
		return 1
	}
	if !parser.Parse(args) {
		for _, parseErr := range parser.GetErrors() {
			fmt.Fprintf(stderr, " - %s\n", parseErr)
		}
		parser.PrintUsage(stderr)
		return 1
	}
	applyOptions(cfg, opts)
	log.SetLevel(cfg.LogLevel)

	log.WithFields(log.Fields{
		"input":  cfg.Input,
		"locale": cfg.Locale,
		"level":  cfg.LogLevel,
	}).Debug("bigmin configuration")

	r := stdin
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			log.Error("Unable to open the input file, error:", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	if opts.Float {
		floats, err := input.ReadFloats(r)
		if err != nil {
			log.Error("Unable to read the numbers, error:", err)
			return 1
		}
		fmt.Fprintln(stdout, format.ScalarMinimum(floats))
		return 0
	}

	values, err := input.Read(r)
	if err != nil {
		log.Error("Unable to read the numbers, error:", err)
		return 1
	}

	if opts.Table {
		fmt.Fprint(stdout, format.Digits(format.Printer(cfg.Locale), values))
	}
	fmt.Fprintln(stdout, format.Minimum(values))
	return 0
}

// applyOptions overrides the configuration with the flags that were set.
func applyOptions(cfg *config.Config, opts *Options) {
	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.Locale != "" {
		cfg.Locale = opts.Locale
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = config.ParseLevel(opts.LogLevel)
	}
}
