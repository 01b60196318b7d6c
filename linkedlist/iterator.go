package linkedlist

// Iterator is a forward cursor over a List.
//
// The cursor sits between prev and next. cur is the element returned by the
// last call to Next, or nil when no element is checked out: before the first
// Next, after Remove and after Add. Remove and Set require a checked out element.
//
// An iterator is bound to its list for its whole lifetime. Structural
// modification of the list by any other means than the iterator itself makes
// the iterator stale; every further call on it panics.
type Iterator struct {
	list            *List
	prev, cur, next *node
	gen             uint64
}

// NewIterator returns an iterator positioned before the first element of l.
func NewIterator(l *List) *Iterator {
	if l == nil {
		fatal(nil, &Error{Op: "NewIterator", Kind: NullHandle, subject: "list"})
	}

	return &Iterator{
		list: l,
		next: l.head,
		gen:  l.gen,
	}
}

// HasNext reports whether Next has an element to return.
func (it *Iterator) HasNext() bool {
	it.check("HasNext")
	return it.next != nil
}

// Next advances the cursor and returns the element it passed over.
func (it *Iterator) Next() int {
	it.check("Next")
	if it.next == nil {
		fatal(it.list, &Error{Op: "Next", Kind: NoSuchElement})
	}

	if it.cur != nil {
		it.prev = it.cur
	}
	it.cur = it.next
	it.next = it.cur.next

	return it.cur.value
}

// Remove removes the element returned by the last call to Next.
// It may be called at most once per call to Next.
func (it *Iterator) Remove() {
	it.check("Remove")
	it.checkState("Remove")

	it.list.unlinkAfter(it.prev)
	it.cur = nil
	it.gen = it.list.gen
}

// Add inserts value at the cursor position, before the element the next call
// to Next would return. The cursor moves past the new element, so Next does
// not return it.
func (it *Iterator) Add(value int) {
	it.check("Add")

	if it.cur != nil {
		it.prev = it.cur
		it.cur = nil
	}
	it.prev = it.list.insertAfter(it.prev, value)
	it.gen = it.list.gen
}

// Set replaces the element returned by the last call to Next.
func (it *Iterator) Set(value int) {
	it.check("Set")
	it.checkState("Set")

	it.cur.value = value
}

func (it *Iterator) check(op string) {
	if it == nil {
		fatal(nil, &Error{Op: op, Kind: NullHandle, subject: "iterator"})
	}
	if it.list == nil {
		fatal(nil, &Error{Op: op, Kind: NullHandle, subject: "list"})
	}
	if it.gen != it.list.gen {
		fatal(it.list, &Error{Op: op, Kind: StaleIterator})
	}
}

// checkState requires an element checked out by Next.
func (it *Iterator) checkState(op string) {
	if it.cur == nil {
		fatal(it.list, &Error{Op: op, Kind: IllegalState})
	}
}
