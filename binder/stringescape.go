package binder

import (
	"strings"

	"github.com/kestrel-lang/kestrel/ast"
)

// validEscapeChars are the characters CPython accepts after a backslash
// in a non-raw string literal. Anything else is a deprecated escape
// sequence the language only keeps working by accident.
var validEscapeChars = map[byte]bool{
	'\n': true, '\\': true, '\'': true, '"': true,
	'a': true, 'b': true, 'f': true, 'n': true, 'r': true, 't': true, 'v': true,
	'0': true, '1': true, '2': true, '3': true, '4': true, '5': true, '6': true, '7': true,
	'x': true, 'N': true, 'u': true, 'U': true,
}

// rawStringPrefix reports whether raw's literal prefix (the characters
// before the opening quote, e.g. "rb" in rb"...") contains an 'r' or
// 'R' — backslashes inside a raw string are never escapes.
func rawStringPrefix(raw string) bool {
	idx := strings.IndexAny(raw, "'\"")
	if idx < 0 {
		return false
	}
	prefix := raw[:idx]
	return strings.ContainsAny(prefix, "rR")
}

// validateStringEscapes scans n.Raw for backslash sequences CPython
// does not recognize and reports one reportInvalidStringEscapeSequence
// diagnostic per occurrence (spec §4.1). Raw strings are skipped
// entirely since their backslashes are never escapes.
func validateStringEscapes(fi *FileInfo, n *ast.StringLit) {
	if rawStringPrefix(n.Raw) {
		return
	}
	raw := n.Raw
	for i := 0; i < len(raw)-1; i++ {
		if raw[i] != '\\' {
			continue
		}
		next := raw[i+1]
		if !validEscapeChars[next] {
			report(fi, RuleInvalidStringEscapeSequence, escapeRange(n.Range, i), "unsupported escape sequence in string literal", nil)
		}
		i++ // the escaped character itself can't start a new escape
	}
}

// escapeRange approximates the source range of the two-byte escape
// sequence starting at byte offset idx within the literal's Raw text,
// relative to lit's own Start offset. Line/Col are left zero: Raw's
// byte index doesn't account for any newlines inside the literal, and
// offset alone is enough for diagnostic ordering.
func escapeRange(lit ast.Range, idx int) ast.Range {
	start := ast.Position{Offset: lit.Start.Offset + idx}
	end := ast.Position{Offset: start.Offset + 2}
	return ast.Range{Start: start, End: end}
}
