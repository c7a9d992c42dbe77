package symrs

import (
	"sync"

	"github.com/google/btree"
	"github.com/pkg/errors"
)

// Table interns symbol names. Every Symbol belongs to the Table that created
// it. A Table is safe for concurrent use; its lock is held only for a single
// lookup or insert.
type Table struct {
	mu sync.Mutex
	// index orders the interned names for lookup and listing.
	index *btree.BTreeG[entry]
	// names maps symbol ids back to names.
	names []string
}

// entry is an interned name in the index.
type entry struct {
	name string
	id   uint32
}

func lessEntries(a, b entry) bool {
	return a.name < b.name
}

// Symbol is a handle to an interned name. Symbols are cheap to copy and can
// be compared with ==. Two Symbols are equal iff they were interned from the
// same string in the same Table.
type Symbol struct {
	tab *Table
	id  uint32
}

// NewTable creates an empty symbol table.
func NewTable() *Table {
	return &Table{index: btree.NewG[entry](8, lessEntries)}
}

// Intern returns the Symbol for name, inserting it if it has not been seen.
func (t *Table) Intern(name string) Symbol {
	t.mu.Lock()
	defer t.mu.Unlock()
	if e, ok := t.index.Get(entry{name: name}); ok {
		return Symbol{tab: t, id: e.id}
	}
	id := uint32(len(t.names))
	if int(id) != len(t.names) {
		panic(errors.Errorf("symrs: symbol table full at %d names", len(t.names)))
	}
	t.names = append(t.names, name)
	t.index.ReplaceOrInsert(entry{name: name, id: id})
	return Symbol{tab: t, id: id}
}

// Lookup returns the Symbol for name if it has been interned.
func (t *Table) Lookup(name string) (Symbol, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.index.Get(entry{name: name})
	if !ok {
		return Symbol{}, false
	}
	return Symbol{tab: t, id: e.id}, true
}

// Resolve returns the name of a Symbol. Panics if s was not created by t.
func (t *Table) Resolve(s Symbol) string {
	if s.tab == nil {
		panic(errors.New("symrs: resolve of zero Symbol"))
	}
	if s.tab != t {
		panic(errors.Errorf("symrs: resolve of Symbol %d from a different table", s.id))
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if int(s.id) >= len(t.names) {
		panic(errors.Errorf("symrs: resolve of unknown Symbol %d", s.id))
	}
	return t.names[s.id]
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.names)
}

// Names returns the interned names in sorted order.
func (t *Table) Names() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := make([]string, 0, t.index.Len())
	t.index.Ascend(func(e entry) bool {
		r = append(r, e.name)
		return true
	})
	return r
}

// Symbol interns name and returns it as a symbol expression.
func (t *Table) Symbol(name string) Expr {
	return t.Intern(name).Expr()
}

// Table returns the table that created s, or nil for the zero Symbol.
func (s Symbol) Table() *Table {
	return s.tab
}

// String returns the symbol's name. Panics if s is the zero Symbol.
func (s Symbol) String() string {
	return s.tab.Resolve(s)
}

// Expr converts s to a symbol expression.
func (s Symbol) Expr() Expr {
	return Expr{kind: Sym, sym: s}
}
