/*
File    : signo/internal/stdlib/strings.go

`length`, `upcase`, `downcase`, `capitalize`, `trim`, `concat` (strings OR
lists), `first`, `last`, `nth(i, s)`. `first`/`last`/`nth` work over
either strings or lists, dispatched here on the actual argument's Kind,
same as `concat`.
*/
package stdlib

import (
	"strings"
	"unicode/utf8"

	"github.com/RobinBoers/signo/internal/ast"
	"github.com/RobinBoers/signo/internal/position"
	"github.com/RobinBoers/signo/internal/sigerr"
)

func init() {
	register(map[string]ast.BuiltinFunc{
		"length":     lengthFn,
		"upcase":     upcaseFn,
		"downcase":   downcaseFn,
		"capitalize": capitalizeFn,
		"trim":       trimFn,
		"concat":     concatFn,
		"first":      firstFn,
		"last":       lastFn,
		"nth":        nthFn,
	})
}

func lengthFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("length", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case ast.String:
		return ast.Int(int64(utf8.RuneCountInString(v.Value))), nil
	case ast.List:
		return ast.Int(int64(len(v.Elements))), nil
	case ast.Nil:
		return ast.Int(0), nil
	default:
		return nil, sigerr.NewType(pos, "length expects a string or list, got %s", v.Kind())
	}
}

func upcaseFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	s, err := stringArg("upcase", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.String{Value: strings.ToUpper(s.Value)}, nil
}

func downcaseFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	s, err := stringArg("downcase", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.String{Value: strings.ToLower(s.Value)}, nil
}

func capitalizeFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	s, err := stringArg("capitalize", args, pos)
	if err != nil {
		return nil, err
	}
	if s.Value == "" {
		return s, nil
	}
	r, size := utf8.DecodeRuneInString(s.Value)
	return ast.String{Value: strings.ToUpper(string(r)) + s.Value[size:]}, nil
}

func trimFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	s, err := stringArg("trim", args, pos)
	if err != nil {
		return nil, err
	}
	return ast.String{Value: strings.TrimSpace(s.Value)}, nil
}

func stringArg(name string, args []ast.Value, pos position.Position) (ast.String, error) {
	if err := wantArity(name, args, 1, pos); err != nil {
		return ast.String{}, err
	}
	return wantString(name, args, 0, pos)
}

// concatFn joins strings OR lists, dispatched on the first
// argument's kind; every argument must share that kind.
func concatFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if len(args) == 0 {
		return ast.String{}, nil
	}
	switch args[0].(type) {
	case ast.String:
		var b strings.Builder
		for i, a := range args {
			s, ok := a.(ast.String)
			if !ok {
				return nil, sigerr.NewType(pos, "concat: argument %d is not a string", i+1)
			}
			b.WriteString(s.Value)
		}
		return ast.String{Value: b.String()}, nil
	case ast.List:
		var elems []ast.Expr
		for i, a := range args {
			l, ok := a.(ast.List)
			if !ok {
				return nil, sigerr.NewType(pos, "concat: argument %d is not a list", i+1)
			}
			elems = append(elems, l.Elements...)
		}
		if len(elems) == 0 {
			return ast.Nil{}, nil
		}
		return ast.List{Elements: elems, Position: pos}, nil
	default:
		return nil, sigerr.NewType(pos, "concat expects strings or lists, got %s", args[0].Kind())
	}
}

func firstFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("first", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case ast.Nil:
		return ast.Nil{}, nil
	case ast.String:
		if v.Value == "" {
			return nil, sigerr.NewType(pos, "first: empty string")
		}
		r, _ := utf8.DecodeRuneInString(v.Value)
		return ast.String{Value: string(r)}, nil
	case ast.List:
		if len(v.Elements) == 0 {
			return nil, sigerr.NewType(pos, "first: empty list")
		}
		return v.Elements[0], nil
	default:
		return nil, sigerr.NewType(pos, "first expects a string or list, got %s", v.Kind())
	}
}

func lastFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("last", args, 1, pos); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case ast.Nil:
		return ast.Nil{}, nil
	case ast.String:
		if v.Value == "" {
			return nil, sigerr.NewType(pos, "last: empty string")
		}
		r, _ := utf8.DecodeLastRuneInString(v.Value)
		return ast.String{Value: string(r)}, nil
	case ast.List:
		if len(v.Elements) == 0 {
			return nil, sigerr.NewType(pos, "last: empty list")
		}
		return v.Elements[len(v.Elements)-1], nil
	default:
		return nil, sigerr.NewType(pos, "last expects a string or list, got %s", v.Kind())
	}
}

func nthFn(args []ast.Value, pos position.Position, rt ast.Runtime) (ast.Value, error) {
	if err := wantArity("nth", args, 2, pos); err != nil {
		return nil, err
	}
	idx, err := wantNumber("nth", args, 0, pos)
	if err != nil {
		return nil, err
	}
	i := int(idx.AsFloat())
	switch v := args[1].(type) {
	case ast.String:
		runes := []rune(v.Value)
		if i < 0 || i >= len(runes) {
			return nil, sigerr.NewType(pos, "nth: index %d out of range", i)
		}
		return ast.String{Value: string(runes[i])}, nil
	case ast.List:
		if i < 0 || i >= len(v.Elements) {
			return nil, sigerr.NewType(pos, "nth: index %d out of range", i)
		}
		return v.Elements[i], nil
	default:
		return nil, sigerr.NewType(pos, "nth expects a string or list, got %s", v.Kind())
	}
}
