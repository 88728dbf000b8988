package ofm

// The conceptual complete binary tree over the cell array's leaves.
// Nothing is allocated: nodes are (depth, offset) coordinates and ranges
// are computed arithmetically.

// tree describes a complete binary tree of the given height whose leaves
// are the structure's leaves, left to right.
type tree struct {
	height uint
}

// treeNode addresses one node: depth 0 is the root, depth height-1 the
// leaf level; offset counts nodes of that depth from the left.
type treeNode struct {
	depth  uint
	offset int
}

// leaves reports the number of leaves.
func (t tree) leaves() int { return 1 << (t.height - 1) }

// leaf returns the leaf node with the given index.
func (t tree) leaf(index int) treeNode {
	return treeNode{depth: t.height - 1, offset: index}
}

// span returns the half-open leaf-index range covered by n's subtree.
func (t tree) span(n treeNode) (start, end int) {
	width := 1 << (t.height - n.depth - 1)
	start = n.offset * width

	return start, start + width
}

func (n treeNode) isRoot() bool { return n.depth == 0 }

// toParent transforms n into its parent. Must not be called on the root.
func (n *treeNode) toParent() {
	n.depth--
	n.offset /= 2
}

// sibling returns the node sharing n's parent.
func (n treeNode) sibling() treeNode {
	return treeNode{depth: n.depth, offset: n.offset ^ 1}
}
