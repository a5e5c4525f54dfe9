package symbolic

// Truth is a three-valued logical outcome, as answered by conservative
// decision procedures that may fail to decide a formula either way.
type Truth int8

const (
	// Unknown is the answer for formulas the procedure cannot decide.
	Unknown Truth = iota
	// True is the answer for formulas decided valid.
	True
	// False is the answer for formulas decided unsatisfiable.
	False
)

func (t Truth) String() string {
	switch t {
	case True:
		return colorize.Const("true")
	case False:
		return colorize.Const("false")
	}
	return colorize.Const("unknown")
}

// TruthOf lifts a decided boolean.
func TruthOf(b bool) Truth {
	if b {
		return True
	}
	return False
}

// And computes t ∧ o in Kleene's strong three-valued logic:
//
//	.-----------------------------.
//	|   t   |   o   |   t ∧ o     |
//	|=======|=======|=============|
//	| false |  ∀ o  |   false     |
//	|-------|-------|-------------|
//	|  ∀ t  | false |   false     |
//	|-------|-------|-------------|
//	| true  | true  |   true      |
//	|-------|-------|-------------|
//	| else  |       |   unknown   |
//	 -----------------------------
func (t Truth) And(o Truth) Truth {
	switch {
	case t == False || o == False:
		return False
	case t == True && o == True:
		return True
	}
	return Unknown
}

// Or computes t ∨ o in Kleene's strong three-valued logic:
//
//	.-----------------------------.
//	|   t   |   o   |   t ∨ o     |
//	|=======|=======|=============|
//	| true  |  ∀ o  |   true      |
//	|-------|-------|-------------|
//	|  ∀ t  | true  |   true      |
//	|-------|-------|-------------|
//	| false | false |   false     |
//	|-------|-------|-------------|
//	| else  |       |   unknown   |
//	 -----------------------------
func (t Truth) Or(o Truth) Truth {
	switch {
	case t == True || o == True:
		return True
	case t == False && o == False:
		return False
	}
	return Unknown
}

// Not negates the truth value; unknown stays unknown.
func (t Truth) Not() Truth {
	switch t {
	case True:
		return False
	case False:
		return True
	}
	return Unknown
}
