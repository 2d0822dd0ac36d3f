// Package strtable implements the string interning table shared by the
// compiler and the VM. Interning reduces string equality (and global
// variable lookup, since global names are themselves String values) to a
// single pointer comparison.
package strtable

import "github.com/dolthub/swiss"

// Entry is the canonical, stored copy of an interned byte sequence. Two
// Values that intern equal strings hold the same *Entry, so comparing
// Entry pointers is enough to compare strings.
type Entry struct {
	S string
}

// Table owns the canonical copy of every interned string for as long as
// the Table lives, across every interpret call that uses it. It is shared
// between the Compiler (which interns
// string literals and global variable names) and the VM (which interns the
// result of runtime string concatenation).
type Table struct {
	entries *swiss.Map[string, *Entry]
	count   int
}

// New returns an empty Table.
func New() *Table {
	return &Table{entries: swiss.NewMap[string, *Entry](64)}
}

// Intern returns the canonical *Entry for s, creating and storing one if
// this is the first time s has been seen.
func (t *Table) Intern(s string) *Entry {
	if e, ok := t.entries.Get(s); ok {
		return e
	}
	e := &Entry{S: s}
	t.entries.Put(s, e)
	t.count++
	return e
}

// Len reports the number of distinct strings interned so far.
func (t *Table) Len() int { return t.count }
