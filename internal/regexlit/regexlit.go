// Package regexlit renders regex-literal option flags for the target
// backends. The front end hands the core a pattern plus one combined
// flag value; this package validates the pattern and spells the flags
// the way each target expects.
package regexlit

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/strada-lang/strada/internal/ir"
)

// Validate compiles the pattern under the regexp2 options equivalent
// to flags, so malformed patterns are caught before any output is
// produced.
func Validate(pattern string, flags ir.RegexFlags) error {
	var opts regexp2.RegexOptions
	if flags&ir.RegexIgnoreCase != 0 {
		opts |= regexp2.IgnoreCase
	}
	if flags&ir.RegexMultiline != 0 {
		opts |= regexp2.Multiline
	}
	if flags&ir.RegexDotAll != 0 {
		opts |= regexp2.Singleline
	}
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		return fmt.Errorf("invalid regex literal %q: %w", pattern, err)
	}
	return nil
}

// Letters renders JavaScript-style flag letters in canonical order.
func Letters(flags ir.RegexFlags) string {
	var sb strings.Builder
	if flags&ir.RegexGlobal != 0 {
		sb.WriteByte('g')
	}
	if flags&ir.RegexIgnoreCase != 0 {
		sb.WriteByte('i')
	}
	if flags&ir.RegexMultiline != 0 {
		sb.WriteByte('m')
	}
	if flags&ir.RegexDotAll != 0 {
		sb.WriteByte('s')
	}
	return sb.String()
}

// CSharpOptions renders the RegexOptions member list for C#. The
// global flag has no C# equivalent (matching there is iterated, not
// flagged) and is reported as unexpressible.
func CSharpOptions(flags ir.RegexFlags) (string, error) {
	if flags&ir.RegexGlobal != 0 {
		return "", fmt.Errorf("global matching flag has no RegexOptions equivalent")
	}
	var parts []string
	if flags&ir.RegexIgnoreCase != 0 {
		parts = append(parts, "RegexOptions.IgnoreCase")
	}
	if flags&ir.RegexMultiline != 0 {
		parts = append(parts, "RegexOptions.Multiline")
	}
	if flags&ir.RegexDotAll != 0 {
		parts = append(parts, "RegexOptions.Singleline")
	}
	if len(parts) == 0 {
		return "RegexOptions.None", nil
	}
	return strings.Join(parts, " | "), nil
}

// JavaFlags renders the Pattern flag constants for Java. As in C#,
// the global flag is unexpressible.
func JavaFlags(flags ir.RegexFlags) (string, error) {
	if flags&ir.RegexGlobal != 0 {
		return "", fmt.Errorf("global matching flag has no Pattern equivalent")
	}
	var parts []string
	if flags&ir.RegexIgnoreCase != 0 {
		parts = append(parts, "Pattern.CASE_INSENSITIVE")
	}
	if flags&ir.RegexMultiline != 0 {
		parts = append(parts, "Pattern.MULTILINE")
	}
	if flags&ir.RegexDotAll != 0 {
		parts = append(parts, "Pattern.DOTALL")
	}
	return strings.Join(parts, " | "), nil
}
