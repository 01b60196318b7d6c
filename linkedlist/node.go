package linkedlist

// node is a list node. It is owned by its predecessor, or by the list head.
type node struct {
	value int
	next  *node
}

// walk returns the node at position i counted from n.
func (n *node) walk(i int) *node {
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}
