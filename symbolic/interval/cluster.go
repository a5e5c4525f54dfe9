package interval

import (
	"github.com/au-prob/gamut/symbolic"
	"github.com/spakin/disjoint"
)

// clusterOrder orders splitter constraints so that members of the same
// variable cluster are split consecutively. Two constraints belong to one
// cluster when their free variables, the index aside, intersect
// transitively; clusters are independent of each other, so grouping them
// keeps related conditions adjacent in the tree. Both the cluster order
// and the order within a cluster follow discovery order, which keeps
// building deterministic.
func clusterOrder(index *symbolic.Variable, splitters []symbolic.Expression) []symbolic.Expression {
	if len(splitters) < 2 {
		return splitters
	}

	vars := make([]symbolic.VarSet, len(splitters))
	elems := make([]*disjoint.Element, len(splitters))
	for i, c := range splitters {
		vars[i] = symbolic.FreeVariables(c).Remove(index)
		elems[i] = disjoint.NewElement()
		elems[i].Data = i
	}
	for i := range splitters {
		for j := i + 1; j < len(splitters); j++ {
			if vars[i].Intersects(vars[j]) {
				disjoint.Union(elems[i], elems[j])
			}
		}
	}

	buckets := [][]symbolic.Expression{}
	order := map[*disjoint.Element]int{}
	for i, c := range splitters {
		root := elems[i].Find()
		k, found := order[root]
		if !found {
			k = len(buckets)
			order[root] = k
			buckets = append(buckets, nil)
		}
		buckets[k] = append(buckets[k], c)
	}

	out := make([]symbolic.Expression, 0, len(splitters))
	for _, bucket := range buckets {
		out = append(out, bucket...)
	}
	return out
}
