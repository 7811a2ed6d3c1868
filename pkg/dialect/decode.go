package dialect

import (
	"github.com/leapstack-labs/esmgen/pkg/core"
	"github.com/tidwall/gjson"
)

// IsNull reports whether r is absent or JSON null.
func IsNull(r gjson.Result) bool {
	return !r.Exists() || r.Type == gjson.Null
}

// Name returns the identifier name of an Identifier node.
// String literal names (`export {a as "b-c"}`) fall back to their value;
// the printer quotes names that are not identifiers again.
func Name(r gjson.Result) string {
	if IsNull(r) {
		return ""
	}
	if r.Type == gjson.String {
		return r.String()
	}
	if name := r.Get("name"); name.Exists() {
		return name.String()
	}
	return r.Get("value").String()
}

// DecodeSource decodes a string Literal node into a source clause.
// Returns nil when the node is absent.
func DecodeSource(r gjson.Result) *core.Source {
	if IsNull(r) {
		return nil
	}
	return &core.Source{
		Value: r.Get("value").String(),
		Raw:   r.Get("raw").String(),
	}
}

// DecodeFragment decodes a declaration or expression node into an opaque
// fragment. Positions come from start/end, or from range when the parser
// emits esprima-style ranges.
func DecodeFragment(r gjson.Result) *core.Fragment {
	if IsNull(r) {
		return nil
	}

	frag := &core.Fragment{
		Kind:  r.Get("type").String(),
		Start: -1,
		End:   -1,
		Raw:   r.Get("raw").String(),
	}
	if start, end := r.Get("start"), r.Get("end"); start.Exists() && end.Exists() {
		frag.Start = int(start.Int())
		frag.End = int(end.Int())
	} else if rng := r.Get("range"); rng.IsArray() {
		frag.Start = int(rng.Get("0").Int())
		frag.End = int(rng.Get("1").Int())
	}
	return frag
}

// DecodeSpecifiers decodes every element of list with classify.
func DecodeSpecifiers(list gjson.Result, classify func(gjson.Result) (core.Specifier, error)) ([]core.Specifier, error) {
	if IsNull(list) {
		return nil, nil
	}

	var (
		specs []core.Specifier
		err   error
	)
	list.ForEach(func(_, s gjson.Result) bool {
		var spec core.Specifier
		spec, err = classify(s)
		if err != nil {
			return false
		}
		specs = append(specs, spec)
		return true
	})
	if err != nil {
		return nil, err
	}
	return specs, nil
}
