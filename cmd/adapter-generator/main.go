// Package main provides the CLI entrypoint for adapter-generator.
//
// adapter-generator resolves serialization strategies for declared classes
// and synthesizes the paired read/write codecs:
//   - check: load a schema, resolve every class, report diagnostics
//   - dump: print the resolved plan for debugging
//   - analyze: derive classes from Go source instead of a schema file
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"adapter-generator/internal/analyze"
	"adapter-generator/internal/gen"
	"adapter-generator/internal/resolve"
	"adapter-generator/internal/rt"
	"adapter-generator/internal/schema"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("adapter-generator", flag.ContinueOnError)
	verbose := fs.Bool("v", false, "enable debug logging")
	workers := fs.Int("workers", 0, "generation workers (0 = one per class)")

	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: adapter-generator [flags] <check|dump> <schema.yaml>")
		fmt.Fprintln(fs.Output(), "       adapter-generator [flags] analyze <package-pattern>")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}

	cmd, path := fs.Arg(0), fs.Arg(1)

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	switch cmd {
	case "check":
		return runCheck(log, path, *workers, false)

	case "dump":
		return runCheck(log, path, *workers, true)

	case "analyze":
		return runAnalyze(log, path, *workers)

	default:
		fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		fs.Usage()

		return 2
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	return cfg.Build()
}

// runCheck loads the schema, synthesizes every class, and reports the
// outcome. The exit code is non-zero when any class fails to resolve.
func runCheck(log *zap.Logger, path string, workers int, dump bool) int {
	sch, err := schema.LoadFile(path)
	if err != nil {
		log.Error("load schema", zap.String("path", path), zap.Error(err))
		return 1
	}

	reg, err := sch.Registry()
	if err != nil {
		log.Error("build registry", zap.Error(err))
		return 1
	}

	cfg := resolve.DefaultConfig()
	cfg.Logger = log

	engine := resolve.NewEngine(resolve.NewCatalog(), reg, rt.NewCodecs(), cfg)
	synth := gen.NewSynthesizer(engine, log)

	res, err := synth.GenerateAll(sch.Classes, workers)
	if err != nil {
		log.Error("generate", zap.Error(err))
		return 1
	}

	for _, d := range res.Diagnostics.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if dump {
		dumper := spew.NewDefaultConfig()
		dumper.DisablePointerAddresses = true
		dumper.DisableMethods = true
		dumper.SortKeys = true

		for _, spec := range sch.Classes {
			if codec, ok := res.Codecs[spec.ID]; ok {
				fmt.Printf("=== %s ===\n", spec.ID)
				dumper.Dump(codec.Spec())
			}
		}
	}

	if !res.Diagnostics.IsValid() {
		log.Error("schema has unresolvable classes",
			zap.Int("failures", len(res.Diagnostics.Errors)))

		return 1
	}

	log.Info("all classes resolved",
		zap.Int("classes", len(sch.Classes)),
		zap.Int("codecs", len(res.Codecs)))

	return 0
}

// runAnalyze derives classes from Go source and resolves them the same way
// check does for a schema file.
func runAnalyze(log *zap.Logger, pattern string, workers int) int {
	res, err := analyze.NewBridge(log).Load(pattern)
	if err != nil {
		log.Error("analyze packages", zap.String("pattern", pattern), zap.Error(err))
		return 1
	}

	for _, d := range res.Diagnostics.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	cfg := resolve.DefaultConfig()
	cfg.Logger = log

	engine := resolve.NewEngine(resolve.NewCatalog(), res.Registry, rt.NewCodecs(), cfg)
	synth := gen.NewSynthesizer(engine, log)

	generated, err := synth.GenerateAll(res.Classes, workers)
	if err != nil {
		log.Error("generate", zap.Error(err))
		return 1
	}

	for _, d := range generated.Diagnostics.Errors {
		fmt.Fprintln(os.Stderr, d.String())
	}

	if !res.Diagnostics.IsValid() || !generated.Diagnostics.IsValid() {
		return 1
	}

	log.Info("all analyzed classes resolved",
		zap.Int("classes", len(res.Classes)),
		zap.Int("codecs", len(generated.Codecs)))

	return 0
}
