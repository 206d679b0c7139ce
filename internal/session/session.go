// Package session defines the caller-supplied session context handed to the
// access-gate evaluator and the debug walker. The core never constructs one
// itself; the embedding application decides who the current user is.
package session

import (
	"github.com/zclconf/go-cty/cty"
)

// Context describes the acting user for one evaluation: the roles they hold
// plus any extra key/value data the host wants visible to gate expressions.
type Context struct {
	Roles []string       `json:"roles"`
	Extra map[string]any `json:"extra,omitempty"`
}

// RoleSet returns the roles as a set for intersection checks.
func (c Context) RoleSet() map[string]bool {
	set := make(map[string]bool, len(c.Roles))
	for _, r := range c.Roles {
		set[r] = true
	}
	return set
}

// HasRole reports whether the session holds the given role.
func (c Context) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Variables renders the session as cty values for expression evaluation:
// "roles" is always present as a tuple of strings, and each representable
// Extra entry becomes a top-level variable. Extra values outside the
// parsed-JSON vocabulary are skipped.
func (c Context) Variables() map[string]cty.Value {
	vars := make(map[string]cty.Value, len(c.Extra)+1)

	if len(c.Roles) == 0 {
		vars["roles"] = cty.EmptyTupleVal
	} else {
		elems := make([]cty.Value, len(c.Roles))
		for i, r := range c.Roles {
			elems[i] = cty.StringVal(r)
		}
		vars["roles"] = cty.TupleVal(elems)
	}

	for k, v := range c.Extra {
		if val, ok := toCty(v); ok {
			vars[k] = val
		}
	}
	return vars
}

// toCty converts a parsed-JSON-shaped Go value to its cty equivalent.
func toCty(v any) (cty.Value, bool) {
	switch val := v.(type) {
	case nil:
		return cty.NullVal(cty.DynamicPseudoType), true
	case bool:
		return cty.BoolVal(val), true
	case string:
		return cty.StringVal(val), true
	case int:
		return cty.NumberIntVal(int64(val)), true
	case int64:
		return cty.NumberIntVal(val), true
	case float64:
		return cty.NumberFloatVal(val), true
	case []any:
		if len(val) == 0 {
			return cty.EmptyTupleVal, true
		}
		elems := make([]cty.Value, 0, len(val))
		for _, item := range val {
			cv, ok := toCty(item)
			if !ok {
				return cty.NilVal, false
			}
			elems = append(elems, cv)
		}
		return cty.TupleVal(elems), true
	case map[string]any:
		attrs := make(map[string]cty.Value, len(val))
		for k, item := range val {
			cv, ok := toCty(item)
			if !ok {
				return cty.NilVal, false
			}
			attrs[k] = cv
		}
		if len(attrs) == 0 {
			return cty.EmptyObjectVal, true
		}
		return cty.ObjectVal(attrs), true
	default:
		return cty.NilVal, false
	}
}
