package builtins

import (
	"fmt"
	"strconv"

	"github.com/kaelscript/kael/internal/runtime"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// jsonModule returns the `json` host module: parse(s) decodes a JSON
// document into Values via gjson; stringify(v) encodes a Value back to
// JSON text by building it up with sjson.
func jsonModule() *runtime.Record {
	mod := runtime.NewRecord()
	mod.Set("parse", runtime.NewHostFunction("parse", jsonParse))
	mod.Set("stringify", runtime.NewHostFunction("stringify", jsonStringify))
	return mod
}

func jsonParse(args []runtime.Value) (runtime.Value, error) {
	text, err := stringArg(args, 0, "parse")
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("parse: invalid JSON")
	}
	return fromGJSON(gjson.Parse(text)), nil
}

func fromGJSON(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.Null_
	case gjson.True, gjson.False:
		return runtime.Boolean(r.Bool())
	case gjson.Number:
		return runtime.Number(r.Float())
	case gjson.String:
		return runtime.String(r.String())
	case gjson.JSON:
		if r.IsArray() {
			var elements []runtime.Value
			r.ForEach(func(_, v gjson.Result) bool {
				elements = append(elements, fromGJSON(v))
				return true
			})
			return runtime.NewArray(elements)
		}
		rec := runtime.NewRecord()
		r.ForEach(func(k, v gjson.Result) bool {
			rec.Set(k.String(), fromGJSON(v))
			return true
		})
		return rec
	default:
		return runtime.Undefined_
	}
}

func jsonStringify(args []runtime.Value) (runtime.Value, error) {
	if len(args) == 0 {
		return runtime.String("null"), nil
	}
	text, err := toJSONText(args[0])
	if err != nil {
		return nil, fmt.Errorf("stringify: %w", err)
	}
	return runtime.String(text), nil
}

// toJSONText encodes a Value to JSON text by building it incrementally
// with sjson.SetRaw, since sjson has no single "encode arbitrary tree"
// entry point the way its sibling gjson has one for decoding.
func toJSONText(v runtime.Value) (string, error) {
	switch val := v.(type) {
	case runtime.Null:
		return "null", nil
	case runtime.Undefined:
		return "", fmt.Errorf("undefined is not serializable")
	case runtime.Boolean:
		if val {
			return "true", nil
		}
		return "false", nil
	case runtime.Number:
		return strconv.FormatFloat(float64(val), 'g', -1, 64), nil
	case runtime.String:
		quoted, err := sjson.Set(`{"v":0}`, "v", string(val))
		if err != nil {
			return "", err
		}
		return gjson.Get(quoted, "v").Raw, nil
	case *runtime.Array:
		doc := "[]"
		for i, el := range val.Elements {
			raw, err := toJSONText(el)
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, fmt.Sprintf("%d", i), raw)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	case *runtime.Record:
		doc := "{}"
		for _, k := range val.Keys() {
			raw, err := toJSONText(val.Get(k))
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, k, raw)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	default:
		return "", &TypeMismatchError{Message: fmt.Sprintf("%s is not serializable", v.Type())}
	}
}
