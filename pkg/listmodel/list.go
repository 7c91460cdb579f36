// Package listmodel is the ordered item list and selection index shared by a
// dropdown's inline display and its popup menu.
package listmodel

import "slices"

// NoSelection is the selected index when nothing matches.
const NoSelection = -1

// List is an ordered sequence of strings with a selected index.
// The index is either NoSelection or a valid position in the items.
type List struct {
	items    []string
	selected int
}

// New returns a list holding a copy of items with the first item selected.
func New(items []string) *List {
	l := &List{}
	l.SetItems(items)
	return l
}

// Items returns a copy of the items.
func (l *List) Items() []string {
	return slices.Clone(l.items)
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// Item returns the item at i, or "" and false if i is out of range.
func (l *List) Item(i int) (string, bool) {
	if !l.Valid(i) {
		return "", false
	}
	return l.items[i], true
}

// Valid reports whether i is a position in the list.
func (l *List) Valid(i int) bool {
	return i >= 0 && i < len(l.items)
}

// Selected returns the selected index, possibly NoSelection.
func (l *List) Selected() int {
	return l.selected
}

// Current returns the selected item, or "" and false when nothing is selected.
func (l *List) Current() (string, bool) {
	return l.Item(l.selected)
}

// Select sets the selected index. Out-of-range indices, negative ones
// included, leave the list untouched and report false.
func (l *List) Select(i int) bool {
	if !l.Valid(i) {
		return false
	}
	l.selected = i
	return true
}

// SetItems replaces the items and resets the selection to the first item,
// or NoSelection if the new list is empty.
func (l *List) SetItems(items []string) {
	l.items = slices.Clone(items)
	if len(l.items) == 0 {
		l.selected = NoSelection
		return
	}
	l.selected = 0
}

// Match selects the first item equal to text and returns its index. When no
// item matches the selection becomes NoSelection.
func (l *List) Match(text string) int {
	l.selected = slices.Index(l.items, text)
	return l.selected
}
