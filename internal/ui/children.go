package ui

// Children is an ordered, mutable collection of nodes owned by a panel
type Children struct {
	items []Node
}

// NewChildren creates an empty collection
func NewChildren() *Children {
	return &Children{}
}

// Add appends nodes in order
func (c *Children) Add(nodes ...Node) {
	c.items = append(c.items, nodes...)
}

// Insert places n at index i, shifting later nodes right. Out of range
// indexes are clamped.
func (c *Children) Insert(i int, n Node) {
	if i < 0 {
		i = 0
	}
	if i > len(c.items) {
		i = len(c.items)
	}
	c.items = append(c.items, nil)
	copy(c.items[i+1:], c.items[i:])
	c.items[i] = n
}

// Remove deletes the first occurrence of n and reports whether it was found
func (c *Children) Remove(n Node) bool {
	for i, item := range c.items {
		if item == n {
			c.RemoveAt(i)
			return true
		}
	}
	return false
}

// RemoveAt deletes the node at index i
func (c *Children) RemoveAt(i int) {
	if i < 0 || i >= len(c.items) {
		return
	}
	copy(c.items[i:], c.items[i+1:])
	c.items[len(c.items)-1] = nil
	c.items = c.items[:len(c.items)-1]
}

// Move relocates the node at index from to index to
func (c *Children) Move(from, to int) {
	if from < 0 || from >= len(c.items) {
		return
	}
	n := c.items[from]
	c.RemoveAt(from)
	c.Insert(to, n)
}

// Clear removes every node
func (c *Children) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
}

// Len returns the number of nodes
func (c *Children) Len() int {
	return len(c.items)
}

// At returns the node at index i
func (c *Children) At(i int) Node {
	return c.items[i]
}

// IndexOf returns the position of n or -1
func (c *Children) IndexOf(n Node) int {
	for i, item := range c.items {
		if item == n {
			return i
		}
	}
	return -1
}

// Each calls fn for every node in order
func (c *Children) Each(fn func(i int, n Node)) {
	for i, item := range c.items {
		fn(i, item)
	}
}
