// internal/analytics/sink.go
//
// Sink adapters deliver a VariableMap to the page tracker.
//
// Context
// -------
// Both adapters number variables from a base slot, one slot per entry, in
// insertion order:
//
//   - AppendCustomVars is the push-list filter.  It is pure: the caller
//     owns the list and the base slot, so other contributors can append to
//     the same list before or after us.
//   - EmitCustomVars writes complete `_gaq.push(...)` statements.  It
//     always starts at slot 1.
//
// Names and values are written literally.  A quote or comma inside a
// value breaks the emitted JavaScript; no escaping is applied.
//
// Notes
// -----
// • Oxford commas, two spaces after periods.
package analytics

import (
	"io"
	"strconv"
)

// PageScope is the tracker's page-level custom variable scope.
const PageScope = 3

// FirstSlot is where direct emission starts numbering.
const FirstSlot = 1

// PushEntry formats one push-list entry:
//
//	'_setCustomVar',<slot>,'<name>','<value>',3
func PushEntry(slot int, name, value string) string {
	return "'_setCustomVar'," + strconv.Itoa(slot) + ",'" + name + "','" + value + "'," +
		strconv.Itoa(PageScope)
}

// PushStatement wraps PushEntry in a complete tracker call.
func PushStatement(slot int, name, value string) string {
	return "_gaq.push([" + PushEntry(slot, name, value) + "]);"
}

// eachSlot walks vars in order, numbering from base.
func eachSlot(vars VariableMap, base int, fn func(slot int, name, value string)) {
	slot := base
	vars.Each(func(name, value string) {
		fn(slot, name, value)
		slot++
	})
}

// AppendCustomVars appends one entry per variable to push, numbering from
// slot, and returns the extended list.
func AppendCustomVars(push []string, slot int, vars VariableMap) []string {
	eachSlot(vars, slot, func(s int, name, value string) {
		push = append(push, PushEntry(s, name, value))
	})
	return push
}

// EmitCustomVars writes one statement per variable to w, numbering from
// FirstSlot.
func EmitCustomVars(w io.Writer, vars VariableMap) error {
	var err error
	eachSlot(vars, FirstSlot, func(s int, name, value string) {
		if err != nil {
			return
		}
		_, err = io.WriteString(w, PushStatement(s, name, value))
	})
	return err
}
