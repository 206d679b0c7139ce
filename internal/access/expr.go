package access

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/blueprintgo/internal/session"
)

// LiteralEvaluator is the placeholder expression language: "true" and
// "false" are honored literally and any other non-empty string passes
// through as true.
type LiteralEvaluator struct{}

// Evaluate implements ExpressionEvaluator.
func (LiteralEvaluator) Evaluate(expr string, _ session.Context) bool {
	return expr != "false"
}

// exprFunctions is the function table available to gate expressions.
var exprFunctions = map[string]function.Function{
	"contains": stdlib.ContainsFunc,
	"length":   stdlib.LengthFunc,
	"lower":    stdlib.LowerFunc,
	"upper":    stdlib.UpperFunc,
}

// HCLEvaluator interprets gate expressions as HCL expressions evaluated
// against the session: the "roles" variable holds the session's roles and
// each session Extra entry is exposed as a top-level variable.
//
// Anything that does not parse, evaluate and convert cleanly to a boolean
// fails closed.
type HCLEvaluator struct{}

// Evaluate implements ExpressionEvaluator.
func (HCLEvaluator) Evaluate(expr string, sess session.Context) bool {
	parsed, diags := hclsyntax.ParseExpression([]byte(expr), "gate-expression", hcl.InitialPos)
	if diags.HasErrors() {
		return false
	}

	evalCtx := &hcl.EvalContext{
		Variables: sess.Variables(),
		Functions: exprFunctions,
	}

	val, diags := parsed.Value(evalCtx)
	if diags.HasErrors() {
		return false
	}

	boolVal, err := convert.Convert(val, cty.Bool)
	if err != nil || boolVal.IsNull() {
		return false
	}
	return boolVal.True()
}
