package linkedlist

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/lists"
	"github.com/emirpasic/gods/utils"
)

var (
	_ lists.List           = (*GodsList)(nil)
	_ containers.Container = (*GodsList)(nil)
)

// GodsList exposes a List through the gods lists.List interface.
//
// Unlike List, it follows the gods conventions: out of range indices are
// ignored or reported through the ok result instead of panicking. Values
// must be of type int.
type GodsList struct {
	list *List
}

// Gods wraps l. Changes through the wrapper are visible in l and vice versa.
func Gods(l *List) *GodsList {
	l.checkNull("Gods")
	return &GodsList{list: l}
}

// List returns the wrapped list.
func (g *GodsList) List() *List {
	return g.list
}

// Get returns the element at index or false if index is out of range.
func (g *GodsList) Get(index int) (interface{}, bool) {
	if !g.withinRange(index) {
		return nil, false
	}
	return g.list.Get(index), true
}

// Remove removes the element at index. Out of range indices are ignored.
func (g *GodsList) Remove(index int) {
	if !g.withinRange(index) {
		return
	}
	g.list.RemoveAt(index)
}

// Add appends values at the back of the list.
func (g *GodsList) Add(values ...interface{}) {
	for _, v := range values {
		g.list.Add(mustInt("Add", v))
	}
}

// Contains reports whether all values are in the list.
func (g *GodsList) Contains(values ...interface{}) bool {
	for _, v := range values {
		i, ok := v.(int)
		if !ok || !g.list.Contains(i) {
			return false
		}
	}
	return true
}

// Sort sorts the elements in place using comparator.
func (g *GodsList) Sort(comparator utils.Comparator) {
	if g.list.len < 2 {
		return
	}

	values := g.Values()
	utils.Sort(values, comparator)

	i := 0
	for n := g.list.head; n != nil; n = n.next {
		n.value = values[i].(int)
		i++
	}
}

// Swap swaps the elements at the two indices if both are in range.
func (g *GodsList) Swap(index1, index2 int) {
	if !g.withinRange(index1) || !g.withinRange(index2) || index1 == index2 {
		return
	}

	n1 := g.list.head.walk(index1)
	n2 := g.list.head.walk(index2)
	n1.value, n2.value = n2.value, n1.value
}

// Insert inserts values starting at index. Inserting at Size() appends.
// Other out of range indices are ignored.
func (g *GodsList) Insert(index int, values ...interface{}) {
	if index < 0 || index > g.list.len {
		return
	}

	for i, v := range values {
		g.list.AddAt(index+i, mustInt("Insert", v))
	}
}

// Set replaces the element at index. Setting at Size() appends.
// Other out of range indices are ignored.
func (g *GodsList) Set(index int, value interface{}) {
	switch {
	case g.withinRange(index):
		g.list.Set(index, mustInt("Set", value))
	case index == g.list.len:
		g.list.Add(mustInt("Set", value))
	}
}

// Empty reports whether the list has no elements.
func (g *GodsList) Empty() bool {
	return g.list.IsEmpty()
}

// Size returns the number of elements in the list.
func (g *GodsList) Size() int {
	return g.list.Len()
}

// Clear removes all elements.
func (g *GodsList) Clear() {
	g.list.Clear()
}

// Values returns the elements from front to back.
func (g *GodsList) Values() []interface{} {
	values := make([]interface{}, 0, g.list.len)
	g.list.Do(func(value int) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (g *GodsList) String() string {
	values := make([]string, 0, g.list.len)
	g.list.Do(func(value int) bool {
		values = append(values, fmt.Sprint(value))
		return true
	})
	return "LinkedList\n" + strings.Join(values, ", ")
}

func (g *GodsList) withinRange(index int) bool {
	return index >= 0 && index < g.list.len
}

func mustInt(op string, v interface{}) int {
	i, ok := v.(int)
	if !ok {
		panic(fmt.Sprintf("linkedlist: %s: unsupported element type %T", op, v))
	}
	return i
}
