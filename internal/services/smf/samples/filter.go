package samples

import (
	"fmt"
	"strings"

	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// Boolean literals are identifiers in the filter grammar.
const (
	identTrue  = "true"
	identFalse = "false"
)

// filterColumns maps filter identifiers to sample table columns.
var filterColumns = map[string]string{
	"name":         "name",
	"weight":       "weight",
	"degree":       "degree",
	"field":        "field",
	"is_eigenform": "is_eigenform",
}

func filterDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("name", filtering.TypeString),
		filtering.DeclareIdent("weight", filtering.TypeInt),
		filtering.DeclareIdent("degree", filtering.TypeInt),
		filtering.DeclareIdent("field", filtering.TypeString),
		filtering.DeclareIdent("is_eigenform", filtering.TypeBool),
		filtering.DeclareIdent(identTrue, filtering.TypeBool),
		filtering.DeclareIdent(identFalse, filtering.TypeBool),
	)
}

// ParseFilter translates an AIP-160 filter expression over sample fields
// into a SQL condition. A blank filter yields the zero Condition.
func ParseFilter(filter string) (storage.Condition, error) {
	if strings.TrimSpace(filter) == "" {
		return storage.Condition{}, nil
	}

	decls, err := filterDeclarations()
	if err != nil {
		return storage.Condition{}, fmt.Errorf("create declarations: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filter, decls)
	if err != nil {
		return storage.Condition{}, fmt.Errorf("parse filter: %w", err)
	}
	if parsed.CheckedExpr == nil {
		return storage.Condition{}, nil
	}
	return translateExpr(parsed.CheckedExpr.GetExpr())
}

func translateExpr(e *expr.Expr) (storage.Condition, error) {
	if e == nil {
		return storage.Condition{}, nil
	}
	if ident, ok := e.GetExprKind().(*expr.Expr_IdentExpr); ok {
		return translateBareIdent(ident.IdentExpr.GetName())
	}
	call, ok := e.GetExprKind().(*expr.Expr_CallExpr)
	if !ok {
		return storage.Condition{}, fmt.Errorf("unsupported expression type: %T", e.GetExprKind())
	}

	args := call.CallExpr.GetArgs()
	switch fn := call.CallExpr.GetFunction(); fn {
	case filtering.FunctionAnd:
		return translateJunction(args, "AND")
	case filtering.FunctionOr:
		return translateJunction(args, "OR")
	case filtering.FunctionNot:
		if len(args) != 1 {
			return storage.Condition{}, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := translateExpr(args[0])
		if err != nil {
			return storage.Condition{}, err
		}
		return storage.Condition{Clause: "NOT (" + inner.Clause + ")", Params: inner.Params}, nil
	case filtering.FunctionEquals,
		filtering.FunctionNotEquals,
		filtering.FunctionLessThan,
		filtering.FunctionLessEquals,
		filtering.FunctionGreaterThan,
		filtering.FunctionGreaterEquals:
		return translateComparison(args, fn)
	default:
		return storage.Condition{}, fmt.Errorf("unsupported function: %s", fn)
	}
}

func translateJunction(args []*expr.Expr, op string) (storage.Condition, error) {
	if len(args) != 2 {
		return storage.Condition{}, fmt.Errorf("%s requires 2 arguments", op)
	}
	left, err := translateExpr(args[0])
	if err != nil {
		return storage.Condition{}, err
	}
	right, err := translateExpr(args[1])
	if err != nil {
		return storage.Condition{}, err
	}
	return storage.Condition{
		Clause: fmt.Sprintf("(%s %s %s)", left.Clause, op, right.Clause),
		Params: append(left.Params, right.Params...),
	}, nil
}

func translateComparison(args []*expr.Expr, op string) (storage.Condition, error) {
	if len(args) != 2 {
		return storage.Condition{}, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := args[0].GetExprKind().(*expr.Expr_IdentExpr)
	if !ok {
		return storage.Condition{}, fmt.Errorf("expected identifier, got %T", args[0].GetExprKind())
	}
	column, ok := filterColumns[ident.IdentExpr.GetName()]
	if !ok {
		return storage.Condition{}, fmt.Errorf("unknown field: %s", ident.IdentExpr.GetName())
	}
	value, err := operandValue(args[1])
	if err != nil {
		return storage.Condition{}, err
	}
	return storage.Condition{
		Clause: fmt.Sprintf("%s %s ?", column, op),
		Params: []any{value},
	}, nil
}

// translateBareIdent turns a lone boolean field into "field = true".
func translateBareIdent(name string) (storage.Condition, error) {
	switch name {
	case identTrue:
		return storage.Condition{Clause: "1 = 1"}, nil
	case identFalse:
		return storage.Condition{Clause: "1 = 0"}, nil
	}
	if name != "is_eigenform" {
		return storage.Condition{}, fmt.Errorf("field %s is not boolean", name)
	}
	return storage.Condition{Clause: filterColumns[name] + " = ?", Params: []any{true}}, nil
}

func operandValue(e *expr.Expr) (any, error) {
	switch kind := e.GetExprKind().(type) {
	case *expr.Expr_ConstExpr:
		return constantValue(kind.ConstExpr)
	case *expr.Expr_IdentExpr:
		switch kind.IdentExpr.GetName() {
		case identTrue:
			return true, nil
		case identFalse:
			return false, nil
		}
		return nil, fmt.Errorf("expected constant, got field %s", kind.IdentExpr.GetName())
	default:
		return nil, fmt.Errorf("expected constant, got %T", e.GetExprKind())
	}
}

func constantValue(c *expr.Constant) (any, error) {
	switch kind := c.GetConstantKind().(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}
