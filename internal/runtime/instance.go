// Package runtime implements the evaluator's mutable state: the frame
// stack, the instance heap with interned primitive identities, and the
// structured interruption (non-local exit) mechanism. Public entry points
// panic with a *runtimeerr.Error at the point of failure and recover at
// their caller's boundary via runtimeerr.Raise/Recover, rather than
// threading an error return through every call.
package runtime

import (
	"fmt"
	"math"

	"github.com/uqbar-project/wollok-core/internal/ids"
	"github.com/uqbar-project/wollok-core/internal/runtimeerr"
)

const (
	numberModule = "wollok.lang.Number"
	stringModule = "wollok.lang.String"
)

// Instance is a runtime object: {id, module, fields, innerValue}.
type Instance struct {
	ID         ids.ID
	Module     string
	Fields     map[string]ids.ID
	InnerValue any
}

func (i Instance) clone() Instance {
	fields := make(map[string]ids.ID, len(i.Fields))
	for k, v := range i.Fields {
		fields[k] = v
	}
	return Instance{ID: i.ID, Module: i.Module, Fields: fields, InnerValue: i.InnerValue}
}

// createInstanceID chooses an id for a new instance: interned by rounded
// canonical string form for wollok.lang.Number, interned by value for
// wollok.lang.String, otherwise freshly minted by gen. interned reports
// whether the chosen id may already have a live entry.
func createInstanceID(module string, baseInnerValue any, precision uint, gen ids.Generator) (id ids.ID, storedInner any, interned bool) {
	switch module {
	case numberModule:
		n, ok := asFloat(baseInnerValue)
		if !ok {
			runtimeerr.Raise(runtimeerr.UndefinedInstance,
				"wollok.lang.Number instance requires a numeric baseInnerValue, got %T", baseInnerValue)
		}
		rounded := roundTo(n, precision)
		return ids.NumberID(formatRounded(rounded, precision)), rounded, true
	case stringModule:
		s, ok := baseInnerValue.(string)
		if !ok {
			runtimeerr.Raise(runtimeerr.UndefinedInstance,
				"wollok.lang.String instance requires a string baseInnerValue, got %T", baseInnerValue)
		}
		return ids.StringID(s), s, true
	default:
		return gen.NewID(), baseInnerValue, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// roundTo rounds n to precision fractional digits. -0 is normalized to 0 so
// that it interns identically to its positive counterpart.
func roundTo(n float64, precision uint) float64 {
	if math.IsNaN(n) {
		return n
	}
	scale := math.Pow(10, float64(precision))
	rounded := math.Round(n*scale) / scale
	if rounded == 0 {
		return 0
	}
	return rounded
}

// formatRounded renders the canonical string form used as the interning
// key. NaN always spells "NaN" so every NaN collides onto one instance.
func formatRounded(n float64, precision uint) string {
	if math.IsNaN(n) {
		return "NaN"
	}
	return fmt.Sprintf("%.*f", precision, n)
}
