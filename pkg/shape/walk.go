package shape

import "github.com/mholzen/bootstrapgen/pkg/collections"

// Stats summarises a shape tree.
type Stats struct {
	Nodes    int          `json:"nodes"`
	Visible  int          `json:"visible"`
	MaxDepth int          `json:"maxDepth"`
	Kinds    map[Kind]int `json:"-"`
}

type frame struct {
	shape   *Shape
	depth   int
	visible bool
}

// Measure walks the tree with an explicit stack, so arbitrarily deep trees can
// be sized before they are handed to a recursive converter. Depth counts the
// root as 1. A shape is counted as visible only when it and all of its
// ancestors are visible.
func Measure(root *Shape) Stats {
	stats := Stats{Kinds: map[Kind]int{}}
	if root == nil {
		return stats
	}

	stack := collections.NewStack(frame{shape: root, depth: 1, visible: root.IsVisible()})
	for !stack.IsEmpty() {
		f, _ := stack.Pop()
		stats.Nodes++
		stats.Kinds[f.shape.Kind()]++
		if f.visible {
			stats.Visible++
		}
		if f.depth > stats.MaxDepth {
			stats.MaxDepth = f.depth
		}
		for _, child := range f.shape.Children {
			if child == nil {
				continue
			}
			stack.Push(frame{shape: child, depth: f.depth + 1, visible: f.visible && child.IsVisible()})
		}
	}
	return stats
}

// KindCounts returns the per-kind node counts keyed by kind name.
func (s Stats) KindCounts() map[string]int {
	counts := make(map[string]int, len(s.Kinds))
	for k, n := range s.Kinds {
		counts[k.String()] = n
	}
	return counts
}
