package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of t to w.
func FprintJSON(w io.Writer, t Term) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ToJSON(t))
}

// ToJSON converts t into a tree of maps suitable for encoding/json.
// Every node has a "type" key; operands are stored under "x", and the
// parts of a conditional under "cond", "then" and "else".
func ToJSON(t Term) interface{} {
	if t == nil {
		return nil
	}

	switch t := t.(type) {
	case *True:
		return map[string]interface{}{"type": "True"}

	case *False:
		return map[string]interface{}{"type": "False"}

	case *Zero:
		return map[string]interface{}{"type": "Zero"}

	case *Succ:
		return map[string]interface{}{
			"type": "Succ",
			"x":    ToJSON(t.X),
		}

	case *Pred:
		return map[string]interface{}{
			"type": "Pred",
			"x":    ToJSON(t.X),
		}

	case *IsZero:
		return map[string]interface{}{
			"type": "IsZero",
			"x":    ToJSON(t.X),
		}

	case *If:
		return map[string]interface{}{
			"type": "If",
			"cond": ToJSON(t.Cond),
			"then": ToJSON(t.Then),
			"else": ToJSON(t.Else),
		}
	}

	return map[string]interface{}{"type": "Unknown"}
}
