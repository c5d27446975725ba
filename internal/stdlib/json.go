/*
File    : signo/internal/stdlib/json.go

`json-get(text, path)` and `json-set(text, path, value)`: additive
builtins bridging Signo Strings to JSON text, built on
github.com/tidwall/gjson and github.com/tidwall/sjson.
*/
package stdlib

import (
	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"json-get": jsonGetFn,
		"json-set": jsonSetFn,
	})
}

func jsonGetFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("json-get", args, 2, pos); err != nil {
		return nil, err
	}
	text, err := wantString("json-get", args, 0, pos)
	if err != nil {
		return nil, err
	}
	path, err := wantString("json-get", args, 1, pos)
	if err != nil {
		return nil, err
	}
	result := gjson.Get(text.Value, path.Value)
	if !result.Exists() {
		return ast.Nil{}, nil
	}
	return jsonResultToValue(result, pos), nil
}

func jsonResultToValue(r gjson.Result, pos position.Position) ast.Value {
	switch r.Type {
	case gjson.Null:
		return ast.Nil{}
	case gjson.True:
		return ast.True
	case gjson.False:
		return ast.False
	case gjson.Number:
		if r.Num == float64(int64(r.Num)) {
			return ast.Int(int64(r.Num))
		}
		return ast.Float(r.Num)
	case gjson.String:
		return ast.String{Value: r.Str}
	case gjson.JSON:
		if r.IsArray() {
			var elems []ast.Expr
			for _, e := range r.Array() {
				elems = append(elems, jsonResultToValue(e, pos))
			}
			if len(elems) == 0 {
				return ast.Nil{}
			}
			return ast.List{Elements: elems, Position: pos}
		}
		return ast.String{Value: r.Raw}
	default:
		return ast.String{Value: r.Raw}
	}
}

func jsonSetFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("json-set", args, 3, pos); err != nil {
		return nil, err
	}
	text, err := wantString("json-set", args, 0, pos)
	if err != nil {
		return nil, err
	}
	path, err := wantString("json-set", args, 1, pos)
	if err != nil {
		return nil, err
	}
	scalar, convErr := valueToJSONScalar(args[2], pos)
	if convErr != nil {
		return nil, convErr
	}
	updated, setErr := sjson.Set(text.Value, path.Value, scalar)
	if setErr != nil {
		return nil, sigerr.NewRuntime(pos, "json-set: %s", setErr)
	}
	return ast.String{Value: updated}, nil
}

// valueToJSONScalar maps a Value to the Go scalar sjson.Set expects,
// per Value→JSON-scalar mapping.
func valueToJSONScalar(v ast.Value, pos position.Position) (interface{}, error) {
	switch x := v.(type) {
	case ast.Nil:
		return nil, nil
	case ast.Atom:
		switch x.Name {
		case "true":
			return true, nil
		case "false":
			return false, nil
		default:
			return x.Name, nil
		}
	case ast.Number:
		if x.IsFloat {
			return x.F, nil
		}
		return x.I, nil
	case ast.String:
		return x.Value, nil
	case ast.List:
		out := make([]interface{}, len(x.Elements))
		for i, e := range x.Elements {
			scalar, err := valueToJSONScalar(e, pos)
			if err != nil {
				return nil, err
			}
			out[i] = scalar
		}
		return out, nil
	default:
		return nil, sigerr.NewType(pos, "json-set: %s has no JSON representation", v.Kind())
	}
}
