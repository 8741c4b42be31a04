// Package compiler drives a translation: decode the IR document, run
// each enabled backend over it, and write one output file per
// (module, backend) pair. A failing pair produces no artifact.
package compiler

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/strada-lang/strada/internal/backend"
	"github.com/strada-lang/strada/internal/diagnostic"
	"github.com/strada-lang/strada/internal/emit"
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/target"
)

// Result holds the outcome of one translation run.
type Result struct {
	Module      *ir.Module
	Outputs     map[string]string // backend name -> generated source
	Diagnostics *diagnostic.Diagnostics
}

// Load reads and decodes an IR document.
func Load(irPath string) (*ir.Module, error) {
	data, err := os.ReadFile(irPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read IR document: %w", err)
	}
	mod, err := ir.DecodeModule(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", irPath, err)
	}
	return mod, nil
}

// Translate runs every enabled backend over the module. Backends that
// cannot express a construct contribute a diagnostic instead of an
// output; the remaining backends still produce theirs.
func Translate(mod *ir.Module, cfg *target.Config, log *zap.Logger) *Result {
	res := &Result{
		Module:      mod,
		Outputs:     make(map[string]string),
		Diagnostics: diagnostic.New(),
	}

	for _, name := range cfg.Enabled() {
		be, err := backend.Get(name)
		if err != nil {
			res.Diagnostics.Errorf(mod.Name, "%s", err)
			continue
		}

		opts := emit.Options{Indent: cfg.Targets[name].Indent}
		start := time.Now()
		out, err := be.Generate(mod, opts)
		if err != nil {
			res.Diagnostics.ErrorfBackend(mod.Name, name, "%s", err)
			continue
		}

		log.Debug("backend finished",
			zap.String("target", name),
			zap.Duration("elapsed", time.Since(start)),
			zap.Int("bytes", len(out)))
		res.Outputs[name] = out
	}
	return res
}

// WriteOutputs writes each generated source next to the module name
// in dir, one file per successful backend.
func WriteOutputs(res *Result, dir string, log *zap.Logger) error {
	if len(res.Outputs) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for name, src := range res.Outputs {
		be, err := backend.Get(name)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, res.Module.Name+be.FileExt())
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		log.Info("wrote output",
			zap.String("target", name),
			zap.String("path", path))
	}
	return nil
}
