package symbolic

// Sort is the type tag of an expression.
type Sort int

const (
	// UnknownSort tags expressions whose sort cannot be derived, e.g.
	// applications of uninterpreted functions.
	UnknownSort Sort = iota
	// IntSort tags integer-valued expressions. Index variables must be
	// int-sorted for strict bounds to normalize soundly.
	IntSort
	// BoolSort tags formulas.
	BoolSort
	// RealSort tags real-valued expressions.
	RealSort
	// FnSort tags function symbols, including the builtin operators.
	FnSort
	// SetSort tags expressions denoting sets of values, such as intervals.
	SetSort
)

var sortNames = [...]string{
	UnknownSort: "unknown",
	IntSort:     "int",
	BoolSort:    "bool",
	RealSort:    "real",
	FnSort:      "fn",
	SetSort:     "set",
}

func (s Sort) String() string {
	if s >= 0 && int(s) < len(sortNames) {
		return sortNames[s]
	}
	return "Sort(?)"
}

// Numeric checks whether the sort admits arithmetic and ordering.
func (s Sort) Numeric() bool {
	return s == IntSort || s == RealSort
}

// SortOf parses a sort name, as accepted in variable declarations.
func SortOf(name string) (Sort, bool) {
	for s, n := range sortNames {
		if n == name && Sort(s) != UnknownSort {
			return Sort(s), true
		}
	}
	return UnknownSort, false
}
