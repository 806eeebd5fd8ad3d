package expr

import "math"

// Walk traverses the tree rooted at root in pre-order, left to right, calling
// visit for every occurrence of a node together with its depth (the root has
// depth 0). A shared sub-tree is visited once for each of its occurrences. If
// visit returns false, the children of the current node are skipped.
func Walk(root *Node, visit func(n *Node, depth int) bool) {
	if root == nil {
		return
	}
	walk(root, 0, visit)
}

func walk(n *Node, depth int, visit func(*Node, int) bool) {
	if !visit(n, depth) {
		return
	}
	for _, ch := range n.children() {
		walk(ch, depth+1, visit)
	}
}

// CountNodes returns the number of node occurrences in the tree rooted at root,
// counting shared sub-trees once per reference, and the number of distinct
// nodes reachable from root. For a tree without sharing both numbers are equal.
// The occurrence count saturates at math.MaxInt.
func CountNodes(root *Node) (occurrences, distinct int) {
	if root == nil {
		return 0, 0
	}
	memo := make(map[*Node]int)
	occurrences = countOccurrences(root, memo)
	return occurrences, len(memo)
}

func countOccurrences(n *Node, memo map[*Node]int) int {
	if c, ok := memo[n]; ok {
		return c
	}
	c := 1
	for _, ch := range n.children() {
		cc := countOccurrences(ch, memo)
		if c > math.MaxInt-cc {
			c = math.MaxInt
		} else {
			c += cc
		}
	}
	memo[n] = c
	return c
}

// Depth returns the length of the longest path from n to a literal, i.e.
// 0 for a literal.
func (n *Node) Depth() int {
	return depth(n, make(map[*Node]int))
}

func depth(n *Node, memo map[*Node]int) int {
	if d, ok := memo[n]; ok {
		return d
	}
	d := 0
	for _, ch := range n.children() {
		if cd := depth(ch, memo) + 1; cd > d {
			d = cd
		}
	}
	memo[n] = d
	return d
}
