// Package backend exposes the concrete target backends behind one
// interface and a name-based registry.
package backend

import (
	"fmt"
	"sort"

	"github.com/strada-lang/strada/internal/csbe"
	"github.com/strada-lang/strada/internal/emit"
	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/javabe"
	"github.com/strada-lang/strada/internal/jsbe"
)

// Backend is the interface all code generation backends implement.
type Backend interface {
	// Name returns the backend name (e.g., "cs", "java", "js").
	Name() string
	// FileExt returns the output file extension, with dot.
	FileExt() string
	// Generate produces output source code from a single IR module.
	// It either fully succeeds or returns an error with no artifact.
	Generate(mod *ir.Module, opts emit.Options) (string, error)
}

// CSBackend wraps csbe as a Backend implementation.
type CSBackend struct{}

func (*CSBackend) Name() string    { return "cs" }
func (*CSBackend) FileExt() string { return ".cs" }

func (*CSBackend) Generate(mod *ir.Module, opts emit.Options) (string, error) {
	return csbe.GenerateOpts(mod, opts)
}

// JavaBackend wraps javabe as a Backend implementation.
type JavaBackend struct{}

func (*JavaBackend) Name() string    { return "java" }
func (*JavaBackend) FileExt() string { return ".java" }

func (*JavaBackend) Generate(mod *ir.Module, opts emit.Options) (string, error) {
	return javabe.GenerateOpts(mod, opts)
}

// JSBackend wraps jsbe as a Backend implementation.
type JSBackend struct{}

func (*JSBackend) Name() string    { return "js" }
func (*JSBackend) FileExt() string { return ".js" }

func (*JSBackend) Generate(mod *ir.Module, opts emit.Options) (string, error) {
	return jsbe.GenerateOpts(mod, opts)
}

var registry = map[string]Backend{
	"cs":   &CSBackend{},
	"java": &JavaBackend{},
	"js":   &JSBackend{},
}

// Get returns the backend registered under name.
func Get(name string) (Backend, error) {
	b, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", name)
	}
	return b, nil
}

// Names returns the registered backend names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
