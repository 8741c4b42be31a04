// Package diagnostic collects and formats translation diagnostics:
// which backend refused which construct in which module.
package diagnostic

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a diagnostic message
type Severity int

const (
	Error Severity = iota
	Warning
	Info
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single translation error, warning, or info
// message, attributed to a module and optionally a backend.
type Diagnostic struct {
	Severity Severity
	Message  string
	Module   string
	Backend  string // "" for backend-independent messages
	Hint     string // optional suggestion
}

// Diagnostics manages a collection of diagnostic messages
type Diagnostics struct {
	items []Diagnostic
}

// New creates a new empty Diagnostics collection
func New() *Diagnostics {
	return &Diagnostics{items: make([]Diagnostic, 0)}
}

// Errorf adds an error diagnostic with formatted message
func (d *Diagnostics) Errorf(module string, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Module:   module,
	})
}

// ErrorfBackend adds an error diagnostic attributed to one backend
func (d *Diagnostics) ErrorfBackend(module, backend string, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Module:   module,
		Backend:  backend,
	})
}

// Warningf adds a warning diagnostic with formatted message
func (d *Diagnostics) Warningf(module string, format string, args ...interface{}) {
	d.items = append(d.items, Diagnostic{
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Module:   module,
	})
}

// HasErrors returns true if there are any error-level diagnostics
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == Error {
			return true
		}
	}
	return false
}

// Errors returns only the error-level diagnostics
func (d *Diagnostics) Errors() []Diagnostic {
	errors := make([]Diagnostic, 0)
	for _, item := range d.items {
		if item.Severity == Error {
			errors = append(errors, item)
		}
	}
	return errors
}

// All returns all diagnostics regardless of severity
func (d *Diagnostics) All() []Diagnostic {
	return d.items
}

// Count returns the total number of diagnostics
func (d *Diagnostics) Count() int {
	return len(d.items)
}

// Format returns human-readable messages.
// Output format:
//
//	error[demo/cs]: cs backend cannot express regex flags: ...
//	  hint: drop the global flag for this target
func (d *Diagnostics) Format() string {
	if len(d.items) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, item := range d.items {
		where := item.Module
		if item.Backend != "" {
			where = item.Module + "/" + item.Backend
		}
		builder.WriteString(fmt.Sprintf("%s[%s]: %s",
			item.Severity.String(), where, item.Message))
		if item.Hint != "" {
			builder.WriteString(fmt.Sprintf("\n  hint: %s", item.Hint))
		}
		if i < len(d.items)-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}

// Clear removes all diagnostics from the collection
func (d *Diagnostics) Clear() {
	d.items = make([]Diagnostic, 0)
}
