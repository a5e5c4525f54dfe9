// Package interval canonicalizes logical constraints over a single
// Int-sorted index variable into enumerable closed intervals. Constraints
// that cannot be folded into interval bounds are preserved as residual
// "dots" next to the interval, or become branch conditions of a case-split
// tree whose leaves are dotted intervals.
package interval

import (
	"errors"
	"fmt"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/utils"
	"github.com/benbjohnson/immutable"
	"github.com/fatih/color"
)

var colorize = struct {
	Empty   func(...interface{}) string
	Keyword func(...interface{}) string
	Unset   func(...interface{}) string
}{
	Empty: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgRed).SprintFunc())(is...)
	},
	Keyword: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlue).SprintFunc())(is...)
	},
	Unset: func(is ...interface{}) string {
		return utils.CanColorize(color.New(color.FgHiBlack).SprintFunc())(is...)
	},
}

var (
	errUnsupportedTypeConversion = errors.New("UnsupportedTypeConversion")
	errIntervalSlot              = errors.New("the interval slot of a dotted interval only holds closed intervals")
	errPatternMatch              = func(v interface{}) error {
		return fmt.Errorf("invalid pattern match: %v %T", v, v)
	}
)

// Structural hash tags, one per node kind introduced by this package.
const (
	hashTagInterval uint32 = iota + 0x1d7
	hashTagDotted
)

// dotList wraps the persistent list carrying residual constraints.
type dotList struct {
	*immutable.List[symbolic.Expression]
}

func emptyDots() dotList {
	return dotList{immutable.NewList[symbolic.Expression]()}
}

func (dl dotList) foreach(do func(index int, e symbolic.Expression)) {
	iter := dl.Iterator()
	for !iter.Done() {
		index, e := iter.Next()
		do(index, e)
	}
}

func (dl dotList) append(e symbolic.Expression) dotList {
	return dotList{dl.Append(e)}
}

func (dl dotList) set(i int, e symbolic.Expression) dotList {
	return dotList{dl.Set(i, e)}
}

func (dl dotList) slice() []symbolic.Expression {
	es := make([]symbolic.Expression, 0, dl.Len())
	dl.foreach(func(_ int, e symbolic.Expression) {
		es = append(es, e)
	})
	return es
}
