package interval

import (
	"fmt"
	"sync"

	"github.com/au-prob/gamut/symbolic"
)

// BuildSplitTree reduces arbitrary boolean constraint structure over the
// index variable to a decision tree with dotted-interval leaves. Each
// non-bound, non-conjunctive sub-constraint becomes a branch condition,
// asserted true towards the then-subtree and false towards the else; the
// bound extractor runs at each leaf once the remaining residue is a pure
// conjunction of bound relations. A branch condition that contradicts the
// ambient conjunction yields a leaf wrapping the empty interval, never an
// error.
//
// Building terminates: every split consumes a splitter atom or replaces a
// disjunction by strictly smaller constraints.
func BuildSplitTree(index *symbolic.Variable, constraint symbolic.Expression) (SplitTree, error) {
	if err := checkIndex(index, constraint); err != nil {
		return nil, err
	}
	return buildTree(index, []symbolic.Expression{constraint})
}

// BuildSplitTreeParallel builds independent branches concurrently. The
// resulting tree is identical to the sequential one.
func BuildSplitTreeParallel(index *symbolic.Variable, constraint symbolic.Expression) (SplitTree, error) {
	if err := checkIndex(index, constraint); err != nil {
		return nil, err
	}
	return buildTreeParallel(index, []symbolic.Expression{constraint})
}

func checkIndex(index *symbolic.Variable, constraint symbolic.Expression) error {
	if index.Sort() != symbolic.IntSort {
		return &UnsupportedConstraintError{
			Constraint: constraint,
			Reason:     fmt.Sprintf("index variable %v is %v-sorted, bound tightening requires ℤ", index, index.Sort()),
		}
	}
	return nil
}

func buildTree(index *symbolic.Variable, residue []symbolic.Expression) (SplitTree, error) {
	flat, splitters, err := partition(index, residue)
	if err != nil {
		return nil, err
	}
	if len(splitters) == 0 {
		d, err := FromConstraints(index, symbolic.And(flat...))
		if err != nil {
			return nil, err
		}
		return NewLeaf(d), nil
	}
	cond, thenResidue, elseResidue := split(index, flat, clusterOrder(index, splitters))

	then, err := buildTree(index, thenResidue)
	if err != nil {
		return nil, err
	}
	if elseResidue == nil {
		return NewBranch(cond, then, emptyLeaf()), nil
	}
	els, err := buildTree(index, elseResidue)
	if err != nil {
		return nil, err
	}
	return NewBranch(cond, then, els), nil
}

func buildTreeParallel(index *symbolic.Variable, residue []symbolic.Expression) (SplitTree, error) {
	flat, splitters, err := partition(index, residue)
	if err != nil {
		return nil, err
	}
	if len(splitters) == 0 {
		d, err := FromConstraints(index, symbolic.And(flat...))
		if err != nil {
			return nil, err
		}
		return NewLeaf(d), nil
	}
	cond, thenResidue, elseResidue := split(index, flat, clusterOrder(index, splitters))

	var (
		wg      sync.WaitGroup
		then    SplitTree
		thenErr error
		els     SplitTree = emptyLeaf()
		elseErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		then, thenErr = buildTreeParallel(index, thenResidue)
	}()
	if elseResidue != nil {
		els, elseErr = buildTreeParallel(index, elseResidue)
	}
	wg.Wait()
	if thenErr != nil {
		return nil, thenErr
	}
	if elseErr != nil {
		return nil, elseErr
	}
	return NewBranch(cond, then, els), nil
}

// partition flattens a residue into the constraints the extractor can
// fold and the splitter constraints the tree must branch on, both in
// discovery order. Malformed shapes abort.
func partition(index *symbolic.Variable, residue []symbolic.Expression) (flat, splitters []symbolic.Expression, err error) {
	for _, e := range residue {
		switch c := classify(e).(type) {
		case conjunction:
			f, s, err := partition(index, c.children)
			if err != nil {
				return nil, nil, err
			}
			flat = append(flat, f...)
			splitters = append(splitters, s...)
		case relational:
			if _, _, err := extractBound(index, c); err == nil {
				flat = append(flat, e)
			} else {
				splitters = append(splitters, e)
			}
		case disjunction:
			splitters = append(splitters, e)
		case malformed:
			return nil, nil, &UnsupportedConstraintError{Constraint: c.expr, Reason: c.reason}
		case other:
			if _, ok := c.expr.(*symbolic.Constant); ok {
				flat = append(flat, e)
			} else {
				splitters = append(splitters, e)
			}
		default:
			panic(errPatternMatch(c))
		}
	}
	return flat, splitters, nil
}

// split selects the first splitter and forms the branch condition and
// both branch residues. For a disjunction the condition is its first
// disjunct and the else-residue keeps the remaining disjuncts; for a
// non-bound atom the else-branch contradicts the ambient conjunction,
// marked by a nil else-residue. The asserted condition re-enters a
// residue only when the extractor can fold it, so that it tightens the
// branch interval; otherwise the branch position alone records it.
func split(index *symbolic.Variable, flat, splitters []symbolic.Expression) (cond symbolic.Expression, thenResidue, elseResidue []symbolic.Expression) {
	head, rest := splitters[0], splitters[1:]
	base := make([]symbolic.Expression, 0, len(flat)+len(rest))
	base = append(base, flat...)
	base = append(base, rest...)

	if d, ok := classify(head).(disjunction); ok {
		cond = d.children[0]
		thenResidue = base
		if foldable(index, cond) {
			thenResidue = append(append([]symbolic.Expression{}, base...), cond)
		}
		elseResidue = append(append([]symbolic.Expression{}, base...), symbolic.Or(d.children[1:]...))
		if negated := symbolic.Not(cond); foldable(index, negated) {
			elseResidue = append(elseResidue, negated)
		}
		return cond, thenResidue, elseResidue
	}
	return head, base, nil
}

// foldable checks whether the extractor can absorb e, either as a bound
// on the index or by decomposing it further.
func foldable(index *symbolic.Variable, e symbolic.Expression) bool {
	switch c := classify(e).(type) {
	case relational:
		_, _, err := extractBound(index, c)
		return err == nil
	case conjunction, disjunction:
		return true
	case other:
		_, ok := c.expr.(*symbolic.Constant)
		return ok
	}
	return false
}
