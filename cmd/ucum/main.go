package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/banshee-data/ucum/internal/config"
	"github.com/banshee-data/ucum/internal/measurement"
	"github.com/banshee-data/ucum/internal/monitoring"
	"github.com/banshee-data/ucum/internal/numeric"
	"github.com/banshee-data/ucum/internal/store"
	"github.com/banshee-data/ucum/internal/ucum"
	"github.com/banshee-data/ucum/internal/units"
	"github.com/banshee-data/ucum/internal/version"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
			os.Exit(2)
		}
		log.Fatalf("ucum: %v", err)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `ucum - UCUM unit parser and converter

Usage: ucum [flags] <command> [args]

Commands:
  parse <expr>                  Show canonical form, dimension, scalar and magnitude
  convert <value> <from> [to]   Convert a value; "to" defaults to the configured speed unit
  record <label> <value> <unit> Store a measurement
  list [unit]                   List stored measurements, optionally converted into unit
  version                       Show version

Flags:
  -config <file>   JSON configuration file (default config/ucum.defaults.json if present)
  -db <path>       SQLite database path
  -precision <n>   Decimal places to print
  -v               Verbose logging

Units may be UCUM expressions ("km/h", "[degF]") or speed names (mps, mph, kmph, kph).`)
}

// options is the resolved configuration after flags override the config file.
type options struct {
	cfg       *config.Config
	dbPath    string
	precision int
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("ucum", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "JSON configuration file")
	dbPath := fs.String("db", "", "SQLite database path")
	precision := fs.Int("precision", -1, "decimal places to print")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if *configPath == "" {
		if _, err := os.Stat(config.DefaultConfigPath); err == nil {
			*configPath = config.DefaultConfigPath
		}
	}
	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	opts := options{cfg: cfg, dbPath: cfg.GetDatabasePath(), precision: cfg.GetPrecision()}
	if *dbPath != "" {
		opts.dbPath = *dbPath
	}
	if *precision >= 0 {
		opts.precision = *precision
	}
	monitoring.SetVerbose(*verbose || cfg.GetVerbose())

	if fs.NArg() < 1 {
		return errUsage
	}
	command, rest := fs.Arg(0), fs.Args()[1:]
	monitoring.Debugf("ucum: %s %v", command, rest)

	switch command {
	case "parse":
		return runParse(stdout, opts, rest)
	case "convert":
		return runConvert(stdout, opts, rest)
	case "record":
		return runRecord(stdout, opts, rest)
	case "list":
		return runList(stdout, opts, rest)
	case "version":
		fmt.Fprintln(stdout, version.String())
		return nil
	case "help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// resolveUnit accepts a speed name before falling back to UCUM, so "mph"
// means miles per hour rather than milliphot.
func resolveUnit(s string) (ucum.Unit, error) {
	if expr, ok := units.Expression(s); ok {
		return ucum.Parse(expr)
	}
	return ucum.Parse(s)
}

func runParse(w io.Writer, opts options, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: parse takes one expression", errUsage)
	}
	u, err := resolveUnit(args[0])
	if err != nil {
		return err
	}
	scalar, err := u.Scalar()
	if err != nil {
		return err
	}
	magnitude, err := u.Magnitude()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "unit:\t%s\n", u)
	fmt.Fprintf(tw, "dimension:\t%s\n", u.Composition())
	fmt.Fprintf(tw, "scalar:\t%s\n", numeric.FormatDecimal(scalar, opts.precision))
	fmt.Fprintf(tw, "magnitude:\t%s\n", numeric.FormatDecimal(magnitude, opts.precision))
	fmt.Fprintf(tw, "special:\t%t\n", u.IsSpecial())
	fmt.Fprintf(tw, "arbitrary:\t%t\n", u.IsArbitrary())
	return tw.Flush()
}

func runConvert(w io.Writer, opts options, args []string) error {
	if len(args) != 2 && len(args) != 3 {
		return fmt.Errorf("%w: convert takes <value> <from> [to]", errUsage)
	}
	value, err := numeric.ParseRat(args[0])
	if err != nil {
		return err
	}
	from, err := resolveUnit(args[1])
	if err != nil {
		return err
	}
	toName := opts.cfg.GetSpeedUnit()
	if len(args) == 3 {
		toName = args[2]
	}
	to, err := resolveUnit(toName)
	if err != nil {
		return err
	}

	converted, err := measurement.New(value, from).ConvertTo(to)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, converted.Format(opts.precision))
	return nil
}

func openStore(path string) (*store.Store, error) {
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	if err := s.MigrateUp(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func runRecord(w io.Writer, opts options, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: record takes <label> <value> <unit>", errUsage)
	}
	value, err := numeric.ParseRat(args[1])
	if err != nil {
		return err
	}
	u, err := resolveUnit(args[2])
	if err != nil {
		return err
	}

	s, err := openStore(opts.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	r, err := s.Record(ctx, args[0], measurement.New(value, u))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, r.ID)
	return nil
}

func runList(w io.Writer, opts options, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: list takes at most one unit", errUsage)
	}
	target, convert := opts.cfg.GetDisplayUnit()
	if len(args) == 1 {
		u, err := resolveUnit(args[0])
		if err != nil {
			return err
		}
		target, convert = u, true
	}

	s, err := openStore(opts.dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	var records []store.Record
	if convert {
		records, err = s.ListIn(ctx, target)
	} else {
		records, err = s.List(ctx)
	}
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.ID, r.Label, r.Measurement.Format(opts.precision), r.RecordedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
