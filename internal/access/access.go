// Package access decides whether a role-based gate passes for a given
// session. Unknown gates fail closed: an id that does not resolve in the
// document's definitions never passes.
package access

import (
	"github.com/vk/blueprintgo/internal/schema"
	"github.com/vk/blueprintgo/internal/session"
)

// ExpressionEvaluator is the substitution point for the gate expression
// language. Implementations must be pure; they are called only after the
// role check has already passed.
type ExpressionEvaluator interface {
	Evaluate(expr string, sess session.Context) bool
}

// Evaluator evaluates access gates against a session context.
type Evaluator struct {
	expr ExpressionEvaluator
}

// New returns an evaluator using the literal placeholder expression
// semantics: only the strings "true" and "false" are interpreted, any other
// non-empty expression passes through as true.
func New() *Evaluator {
	return &Evaluator{expr: LiteralEvaluator{}}
}

// NewWithExpressions returns an evaluator with a custom expression strategy.
func NewWithExpressions(expr ExpressionEvaluator) *Evaluator {
	return &Evaluator{expr: expr}
}

// Evaluate reports whether the gate passes. It returns false when gateID does
// not resolve, when no session role is in the gate's allowed set, or when the
// gate's expression evaluates to false. The expression step is skipped
// entirely when the role check fails.
func (ev *Evaluator) Evaluate(gateID string, sess session.Context, doc *schema.Document) bool {
	gate, ok := doc.Definitions.AccessGates[gateID]
	if !ok {
		return false
	}

	roles := sess.RoleSet()
	matched := false
	for _, allowed := range gate.AllowedRoles {
		if roles[allowed] {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if gate.Expression != "" {
		return ev.expr.Evaluate(gate.Expression, sess)
	}
	return true
}
