// Package emit is the shared emission core of the translator
// backends: a priority-driven expression printer and a
// temporary-variable hoister that lowers non-inlineable
// subexpressions into statement-level temporaries. Backends supply a
// Dialect; the core owns parenthesization, evaluation order and
// statement structure.
package emit

import (
	"fmt"
	"strings"

	"github.com/strada-lang/strada/internal/ir"
	"github.com/strada-lang/strada/internal/types"
)

// Options configures an Emitter.
type Options struct {
	// Indent is the indentation unit; defaults to four spaces.
	Indent string
}

// Emitter holds the emission state for one output file: the output
// buffer, the indentation cursor and the statement-scoped temporary
// table. It is owned by exactly one generation pass.
type Emitter struct {
	d      Dialect
	sb     strings.Builder
	unit   string
	indent int

	// temps maps a node ID to the temporary name materialized for it
	// in the current statement scope.
	temps map[ir.NodeID]string
	// nTemp runs per function so temporary names never collide within
	// an enclosing target scope.
	nTemp int

	ret *types.Type // current function's return type
}

// New creates an Emitter for the given dialect.
func New(d Dialect, opts Options) *Emitter {
	unit := opts.Indent
	if unit == "" {
		unit = "    "
	}
	return &Emitter{
		d:     d,
		unit:  unit,
		temps: make(map[ir.NodeID]string),
	}
}

// Dialect returns the dialect this emitter prints for.
func (e *Emitter) Dialect() Dialect { return e.d }

// String returns everything emitted so far.
func (e *Emitter) String() string { return e.sb.String() }

// SetReturn records the enclosing function's return type, used to
// coerce returned values. It also resets the temporary name counter:
// temporaries are scoped to one target function.
func (e *Emitter) SetReturn(t *types.Type) {
	e.ret = t
	e.nTemp = 0
}

// --- Output cursor ---

// Emit writes raw text.
func (e *Emitter) Emit(s string) { e.sb.WriteString(s) }

// Emitf writes formatted raw text.
func (e *Emitter) Emitf(format string, args ...any) {
	fmt.Fprintf(&e.sb, format, args...)
}

// StartLine writes the current indentation.
func (e *Emitter) StartLine() {
	for i := 0; i < e.indent; i++ {
		e.sb.WriteString(e.unit)
	}
}

// EndLine terminates the current line.
func (e *Emitter) EndLine() { e.sb.WriteByte('\n') }

// EmitLine writes one full indented line.
func (e *Emitter) EmitLine(s string) {
	if s == "" {
		e.sb.WriteByte('\n')
		return
	}
	e.StartLine()
	e.sb.WriteString(s)
	e.sb.WriteByte('\n')
}

// EmitLinef writes one full indented formatted line.
func (e *Emitter) EmitLinef(format string, args ...any) {
	e.EmitLine(fmt.Sprintf(format, args...))
}

// IncIndent opens one level of indentation.
func (e *Emitter) IncIndent() { e.indent++ }

// DecIndent closes one level of indentation.
func (e *Emitter) DecIndent() { e.indent-- }

// --- Error model ---

// Unsupported is the error raised when a backend hook declines to
// render a construct. Emission aborts; no partial artifact survives.
type Unsupported struct {
	Backend   string
	Construct string
	Detail    string
}

func (u *Unsupported) Error() string {
	if u.Detail == "" {
		return fmt.Sprintf("%s backend cannot express %s", u.Backend, u.Construct)
	}
	return fmt.Sprintf("%s backend cannot express %s: %s", u.Backend, u.Construct, u.Detail)
}

// bail carries an emission error up to the Generate boundary.
type bail struct{ err error }

// Fail aborts the current emission pass with err. Dialect hooks call
// this (directly or via an error return to the core) when a construct
// cannot be rendered for their target.
func (e *Emitter) Fail(err error) {
	panic(bail{err})
}

// Recover converts a Fail panic into an error return; all other
// panics, including internal-invariant violations, propagate.
//
//	func Generate(mod *ir.Module) (out string, err error) {
//		defer emit.Recover(&err)
//		...
//	}
func Recover(err *error) {
	if r := recover(); r != nil {
		b, ok := r.(bail)
		if !ok {
			panic(r)
		}
		*err = b.err
	}
}

// ice reports an internal-invariant violation: the dispatcher reached
// a variant with no matching case, or emission state is inconsistent.
// Never recovered.
func ice(format string, args ...any) {
	panic("internal error: " + fmt.Sprintf(format, args...))
}
