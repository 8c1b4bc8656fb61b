package rowan

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// LoadBindings parses a JSON binding table, preserving declaration order.
// The document is either a top-level array of bindings or an object with
// a "bindings" array:
//
//	{"bindings": [
//	  {"event": "nudge", "arg": 1, "keys": ["left", "right"],
//	   "description": "move the selection"},
//	  {"event": "mod", "arg": 0.1, "keys": ["z"]}
//	]}
//
// "arg" may be a string, number, or boolean; when omitted or null the
// binding carries Absent. The loaded table is validated before return.
func LoadBindings(data []byte) (Bindings, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("load bindings: invalid JSON")
	}
	doc := gjson.ParseBytes(data)
	list := doc
	if doc.IsObject() {
		list = doc.Get("bindings")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("load bindings: expected a bindings array")
	}

	var out Bindings
	badIdx := -1
	var badMsg string
	idx := 0
	list.ForEach(func(_, entry gjson.Result) bool {
		if !entry.IsObject() {
			badIdx, badMsg = idx, "not an object"
			return false
		}
		b := Binding{
			Event:       entry.Get("event").String(),
			Arg:         argValue(entry.Get("arg")),
			Description: entry.Get("description").String(),
		}
		entry.Get("keys").ForEach(func(_, key gjson.Result) bool {
			b.Keys = append(b.Keys, Key(key.String()))
			return true
		})
		out = append(out, b)
		idx++
		return true
	})
	if badIdx >= 0 {
		return nil, fmt.Errorf("load bindings: entry %d: %s", badIdx, badMsg)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("load bindings: %w", err)
	}
	return out, nil
}

// argValue maps a JSON scalar onto the binding argument model.
func argValue(r gjson.Result) Value {
	switch r.Type {
	case gjson.String:
		return String(r.String())
	case gjson.Number:
		return Number(r.Float())
	case gjson.True:
		return Boolean(true)
	case gjson.False:
		return Boolean(false)
	default:
		return Absent()
	}
}
