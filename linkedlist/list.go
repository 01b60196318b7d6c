/*
Package linkedlist implements a singly linked list of ints with positional access
and a fail-fast list iterator.

Precondition violations (a nil list or iterator, an out of range index, advancing
an exhausted iterator, removing or setting without a prior Next, using an iterator
after the list was modified behind its back) are programmer errors. The offending
operation releases the list's nodes and panics with an *Error.
*/
package linkedlist

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// List is a singly linked list.
//
// The zero value is a ready to use empty list.
type List struct {
	head *node
	len  int
	// gen is bumped on every structural modification.
	gen uint64
}

// New creates an empty list.
func New() *List {
	return &List{}
}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	l.checkNull("Len")
	return l.len
}

// IsEmpty reports whether the list has no elements.
func (l *List) IsEmpty() bool {
	l.checkNull("IsEmpty")
	return l.len == 0
}

// Add appends value at the back of the list.
func (l *List) Add(value int) {
	l.checkNull("Add")
	l.insertAfter(l.nodeBefore(l.len), value)
}

// AddAt inserts value so that it occupies position index, shifting the
// following elements by one. AddAt(l.Len(), v) is equivalent to Add(v).
func (l *List) AddAt(index, value int) {
	l.checkNull("AddAt")
	if index == l.len {
		l.Add(value)
		return
	}
	l.checkIndex("AddAt", index)
	l.insertAfter(l.nodeBefore(index), value)
}

// Remove removes the first occurrence of value and reports whether it was found.
func (l *List) Remove(value int) bool {
	l.checkNull("Remove")

	var prev *node
	for n := l.head; n != nil; prev, n = n, n.next {
		if n.value == value {
			l.unlinkAfter(prev)
			return true
		}
	}

	return false
}

// RemoveAt removes the element at index and returns it.
func (l *List) RemoveAt(index int) int {
	l.checkNull("RemoveAt")
	l.checkIndex("RemoveAt", index)
	return l.unlinkAfter(l.nodeBefore(index))
}

// Get returns the element at index.
func (l *List) Get(index int) int {
	l.checkNull("Get")
	l.checkIndex("Get", index)
	return l.head.walk(index).value
}

// Set replaces the element at index and returns the replaced element.
// Set does not invalidate iterators.
func (l *List) Set(index, value int) (old int) {
	l.checkNull("Set")
	l.checkIndex("Set", index)

	n := l.head.walk(index)
	old, n.value = n.value, value

	return old
}

// Contains reports whether value is in the list.
func (l *List) Contains(value int) bool {
	l.checkNull("Contains")
	return l.IndexOf(value) >= 0
}

// IndexOf returns the index of the first occurrence of value or -1.
func (l *List) IndexOf(value int) int {
	l.checkNull("IndexOf")

	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			return i
		}
		i++
	}

	return -1
}

// LastIndexOf returns the index of the last occurrence of value or -1.
func (l *List) LastIndexOf(value int) int {
	l.checkNull("LastIndexOf")

	last := -1
	i := 0
	for n := l.head; n != nil; n = n.next {
		if n.value == value {
			last = i
		}
		i++
	}

	return last
}

// Clear removes all elements from the list.
func (l *List) Clear() {
	l.checkNull("Clear")

	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}

	l.head = nil
	l.len = 0
	l.gen++
}

// Do calls function f on each element of the list, in forward order.
// If f returns false, Do stops the iteration.
// f must not change l.
func (l *List) Do(f func(value int) bool) {
	l.checkNull("Do")

	for n := l.head; n != nil; n = n.next {
		if !f(n.value) {
			return
		}
	}
}

// Values returns the elements of the list from front to back.
func (l *List) Values() []int {
	l.checkNull("Values")

	values := make([]int, 0, l.len)
	l.Do(func(value int) bool {
		values = append(values, value)
		return true
	})

	return values
}

// String formats the list as [a, b, c].
func (l *List) String() string {
	l.checkNull("String")

	var b strings.Builder

	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(n.value))
	}
	b.WriteByte(']')

	return b.String()
}

// Print writes the formatted list followed by a newline to w.
func (l *List) Print(w io.Writer) error {
	l.checkNull("Print")

	_, err := fmt.Fprintln(w, l.String())
	return err
}

// Iterator returns an iterator positioned before the first element.
func (l *List) Iterator() *Iterator {
	l.checkNull("Iterator")
	return NewIterator(l)
}

// nodeBefore returns the node preceding position index, or nil for index 0.
func (l *List) nodeBefore(index int) *node {
	if index == 0 {
		return nil
	}
	return l.head.walk(index - 1)
}

// insertAfter links a new node holding value after prev, or at the head if
// prev is nil, and returns the new node.
func (l *List) insertAfter(prev *node, value int) *node {
	n := &node{value: value}

	if prev == nil {
		n.next = l.head
		l.head = n
	} else {
		n.next = prev.next
		prev.next = n
	}

	l.len++
	l.gen++

	return n
}

// unlinkAfter unlinks the node following prev, or the head if prev is nil,
// and returns its value.
func (l *List) unlinkAfter(prev *node) int {
	var n *node

	if prev == nil {
		n = l.head
		l.head = n.next
	} else {
		n = prev.next
		prev.next = n.next
	}

	n.next = nil
	l.len--
	l.gen++

	return n.value
}

func (l *List) checkNull(op string) {
	if l == nil {
		fatal(nil, &Error{Op: op, Kind: NullHandle, subject: "list"})
	}
}

// checkIndex requires 0 <= index < l.len.
func (l *List) checkIndex(op string, index int) {
	if index < 0 || index >= l.len {
		fatal(l, &Error{Op: op, Kind: IndexOutOfRange, Index: index, Size: l.len})
	}
}
