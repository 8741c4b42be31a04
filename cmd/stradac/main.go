package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/strada-lang/strada/internal/backend"
	"github.com/strada-lang/strada/internal/compiler"
	"github.com/strada-lang/strada/internal/target"
)

const usage = `stradac - The Strada translation driver

Usage:
  stradac translate [options] <file.ir.json>   Translate an IR document for all enabled targets
  stradac check <file.ir.json>                 Decode and validate the IR document only
  stradac targets                              List available targets

Options:
  --config <path>    Configuration file (default: strada.toml if present)
  --out <dir>        Output directory (overrides configuration)
  --target <name>    Translate for a single target only
  --verbose          Log backend timing and output paths

The IR document is the fully typed tree produced by the Strada front
end; stradac emits one source file per (module, target) pair.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "translate":
		handleTranslate(os.Args[2:])
	case "check":
		handleCheck(os.Args[2:])
	case "targets":
		for _, name := range backend.Names() {
			fmt.Println(name)
		}
	case "help", "--help", "-h":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
}

func handleTranslate(args []string) {
	var (
		configPath string
		outDir     string
		only       string
		verbose    bool
		filePath   string
	)

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--config":
			i++
			configPath = argValue(args, i, "--config")
		case "--out":
			i++
			outDir = argValue(args, i, "--out")
		case "--target":
			i++
			only = argValue(args, i, "--target")
		case "--verbose":
			verbose = true
		default:
			if strings.HasPrefix(args[i], "-") {
				fmt.Fprintf(os.Stderr, "Unknown option: %s\n", args[i])
				os.Exit(1)
			}
			filePath = args[i]
		}
	}

	if filePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}

	log := newLogger(verbose)
	defer log.Sync()

	cfg := loadConfig(configPath)
	if outDir != "" {
		cfg.Output.Dir = outDir
	}
	if only != "" {
		t, ok := cfg.Targets[only]
		if !ok {
			t = target.Target{}
		}
		t.Enabled = true
		cfg.Targets = map[string]target.Target{only: t}
	}

	mod, err := compiler.Load(filePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	res := compiler.Translate(mod, cfg, log)
	if err := compiler.WriteOutputs(res, cfg.Output.Dir, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	if res.Diagnostics.HasErrors() {
		fmt.Fprintln(os.Stderr, res.Diagnostics.Format())
		os.Exit(1)
	}
}

func handleCheck(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: check expects exactly one input file")
		os.Exit(1)
	}
	mod, err := compiler.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: module %q, %d function(s)\n", mod.Name, len(mod.Functions))
}

func argValue(args []string, i int, flag string) string {
	if i >= len(args) {
		fmt.Fprintf(os.Stderr, "Error: %s requires a value\n", flag)
		os.Exit(1)
	}
	return args[i]
}

func loadConfig(path string) *target.Config {
	if path == "" {
		if _, err := os.Stat(target.ConfigFileName); err == nil {
			path = target.ConfigFileName
		} else {
			return target.Default()
		}
	}
	cfg, err := target.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return cfg
}

func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	log, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return log
}
