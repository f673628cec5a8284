package inline

import (
	"encoding/json"
	"io"

	"github.com/anisan-cli/lifo/script"
	"github.com/anisan-cli/lifo/stack"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

type Result struct {
	// Op is the operation keyword.
	Op string `json:"op" jsonschema:"enum=push,enum=pop,enum=peek,enum=len,enum=empty"`
	// Arg is the pushed value.
	Arg string `json:"arg,omitempty"`
	// Value is null when pop or peek found the stack empty.
	Value *string `json:"value"`
	// Len is the stack length after the operation.
	Len int `json:"len"`
}

type Output struct {
	Ops     int       `json:"ops"`
	Results []*Result `json:"results"`
	Len     int       `json:"len"`
	Empty   bool      `json:"empty"`
}

func newOutput(results []script.Result, s *stack.Stack[string]) *Output {
	return &Output{
		Ops: len(results),
		Results: lo.Map(results, func(r script.Result, _ int) *Result {
			var value *string
			if v, ok := r.Value.Get(); ok {
				value = &v
			}

			return &Result{
				Op:    r.Op.Kind.String(),
				Arg:   r.Op.Arg,
				Value: value,
				Len:   r.Len,
			}
		}),
		Len:   s.Len(),
		Empty: s.IsEmpty(),
	}
}

func writeJson(w io.Writer, results []script.Result, s *stack.Stack[string]) error {
	return json.NewEncoder(w).Encode(newOutput(results, s))
}

// Schema describes the JSON document written in Json mode.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&Output{})
}
