package main

import (
	"fmt"
	"strings"

	"github.com/au-prob/gamut/symbolic"
	"github.com/au-prob/gamut/symbolic/parse"
	"github.com/au-prob/gamut/utils"
)

// declareVar parses a name:sort declaration.
func declareVar(decl string) (*symbolic.Variable, error) {
	name, sortName, ok := strings.Cut(decl, ":")
	if !ok || name == "" {
		return nil, fmt.Errorf("variable declaration %q is not of the form name:sort", decl)
	}
	sort, ok := symbolic.SortOf(sortName)
	if !ok {
		return nil, fmt.Errorf("variable %s declares unknown sort %q", name, sortName)
	}
	return symbolic.Var(name, sort), nil
}

// declarations assembles the int-sorted index variable and the extra
// variable declarations.
func declarations(indexName string, decls []string) (*symbolic.Variable, []*symbolic.Variable, error) {
	index := symbolic.IntVar(indexName)
	vars := []*symbolic.Variable{index}
	for _, decl := range decls {
		v, err := declareVar(decl)
		if err != nil {
			return nil, nil, err
		}
		if v.Name() == indexName {
			return nil, nil, fmt.Errorf("variable %s is already the index", v.Name())
		}
		vars = append(vars, v)
	}
	return index, vars, nil
}

// parseConstraint parses src under the flag declarations.
func parseConstraint(src string) (*symbolic.Variable, symbolic.Expression, error) {
	index, decls, err := declarations(flagIndex, flagVars)
	if err != nil {
		return nil, nil, err
	}
	e, err := parse.Parse(src, decls...)
	if err != nil {
		return nil, nil, err
	}
	utils.VerbosePrint("parsed constraint %v over index %v\n", e, index)
	return index, e, nil
}
