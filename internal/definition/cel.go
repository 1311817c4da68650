package definition

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/common/types/traits"
	"github.com/google/cel-go/ext"

	"param-deserializer/params"
	"param-deserializer/schema"
)

// celProgramCache maps an expression to its compiled cel.Program.
var celProgramCache sync.Map

var newConverterEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("value", cel.DynType),
		ext.Strings(),
	)
})

func loadOrCompileProgram(expr string) (cel.Program, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New("expression required")
	}

	if cached, ok := celProgramCache.Load(expr); ok {
		return cached.(cel.Program), nil
	}

	env, err := newConverterEnv()
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	celProgramCache.Store(expr, program)

	return program, nil
}

// compileConverter turns a CEL expression over "value" into a converter.
// Mappings are handed to CEL as plain maps and come back as *params.Map
// with sorted keys.
func compileConverter(name, expr string) (schema.Converter, error) {
	program, err := loadOrCompileProgram(expr)
	if err != nil {
		return nil, fmt.Errorf("converter %q: %w", name, err)
	}

	return func(raw any) (any, error) {
		out, _, err := program.Eval(map[string]any{"value": params.PlainValue(raw)})
		if err != nil {
			return nil, fmt.Errorf("converter %q: %w", name, err)
		}

		return fromCEL(out)
	}, nil
}

// fromCEL converts a CEL result back into the params value model.
func fromCEL(val ref.Val) (any, error) {
	switch v := val.(type) {
	case types.Null:
		return nil, nil
	case traits.Mapper:
		out := map[string]any{}

		it := v.Iterator()
		for it.HasNext() == types.True {
			key := it.Next()

			k, ok := key.Value().(string)
			if !ok {
				k = fmt.Sprint(key.Value())
			}

			elem, err := fromCEL(v.Get(key))
			if err != nil {
				return nil, err
			}

			out[k] = elem
		}

		return params.FromPlain(out), nil
	case traits.Lister:
		var out []any

		it := v.Iterator()
		for it.HasNext() == types.True {
			elem, err := fromCEL(it.Next())
			if err != nil {
				return nil, err
			}

			out = append(out, elem)
		}

		if out == nil {
			out = []any{}
		}

		return out, nil
	}

	switch n := val.Value().(type) {
	case error:
		return nil, n
	case int64:
		return int(n), nil
	default:
		return n, nil
	}
}
