package interpreter

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/tcalc"
)

// VarTable is the variable store of a session: a mapping from
// case-sensitive names to values. Reassignment overwrites, last write
// wins. The table is only ever mutated between evaluations, never during
// one, so it can safely serve as the evaluator's variable source.
//
// Entries are kept sorted by name, which makes session dumps
// deterministic.
type VarTable struct {
	entries *treemap.Map
}

// NewVarTable creates an empty variable table.
func NewVarTable() *VarTable {
	return &VarTable{
		entries: treemap.NewWithStringComparator(),
	}
}

// Set binds name to a value, overwriting any previous binding.
func (vt *VarTable) Set(name string, value tcalc.Value) {
	tracer().Debugf("variable %s = %s", name, value.Self().String())
	vt.entries.Put(name, value)
}

// Lookup returns the value bound to name, if any.
//
// Interface grammar.VariableSource.
func (vt *VarTable) Lookup(name string) (tcalc.Value, bool) {
	v, ok := vt.entries.Get(name)
	if !ok {
		return nil, false
	}
	return v.(tcalc.Value), true
}

// Len returns the number of variables in the table.
func (vt *VarTable) Len() int {
	return vt.entries.Size()
}

// Each walks the table in lexicographic name order.
func (vt *VarTable) Each(f func(name string, value tcalc.Value)) {
	vt.entries.Each(func(key interface{}, value interface{}) {
		f(key.(string), value.(tcalc.Value))
	})
}
