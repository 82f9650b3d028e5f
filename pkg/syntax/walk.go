package syntax

// Walk traverses the tree depth-first in source order and calls fn for each
// node. If fn returns false, the children of that node are skipped.
func Walk(n *Node, fn func(n *Node) bool) {
	if n == nil {
		return
	}
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// WalkStack is like Walk but also passes the chain of enclosing nodes,
// outermost first. The slice is reused between calls; copy it to retain it.
func WalkStack(n *Node, fn func(n *Node, ancestors []*Node) bool) {
	var stack []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil || !fn(n, stack) {
			return
		}
		stack = append(stack, n)
		for _, c := range n.Children {
			visit(c)
		}
		stack = stack[:len(stack)-1]
	}
	visit(n)
}

// Enclosing returns the chain of nodes whose spans cover [start, end),
// outermost first. The root is included when it covers the range.
func Enclosing(root *Node, start, end int) []*Node {
	var path []*Node
	n := root
	for n != nil && n.Span.Start <= start && end <= n.Span.End {
		path = append(path, n)
		var next *Node
		for _, c := range n.Children {
			if c.Span.Start <= start && end <= c.Span.End {
				next = c
				break
			}
			if c.Span.Start > start {
				break
			}
		}
		n = next
	}
	return path
}

// Find returns the first node in preorder for which pred returns true.
func Find(root *Node, pred func(*Node) bool) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}
