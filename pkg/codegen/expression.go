package codegen

// Expr is the closed set of values that can appear in generated output:
// serialized data literals, verbatim code fragments, and rendered elements.
// Keeping the set closed lets writers and serializers switch exhaustively
// instead of sniffing runtime types.
type Expr interface {
	isExpr()
}

// Literal is a serialized data literal, e.g. `"Go"`, `42`, `[1, 2]` or
// `{ size: "lg" }`. Str marks literals that originated from a plain string so
// attribute writers can emit the quoted form directly instead of bracing it.
type Literal struct {
	Code string
	Str  bool
}

func (Literal) isExpr() {}

// Raw wraps a string that must be emitted as verbatim output code. It is the
// escape hatch props-transform hooks use to inject expressions (nested markup,
// identifiers, function calls) that must never be re-serialized.
type Raw struct {
	Code string
}

func (Raw) isExpr() {}

// RawCode is a convenience constructor for Raw expressions.
func RawCode(code string) Raw {
	return Raw{Code: code}
}

// AsExpr reports whether a value already carries generated code. Values
// flowing out of props-transform hooks are checked with this before any
// serialization runs.
func AsExpr(value any) (Expr, bool) {
	if expr, ok := value.(Expr); ok {
		return expr, true
	}
	return nil, false
}
