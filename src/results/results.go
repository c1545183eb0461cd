// Package results reads resource-estimation JSON documents into result sets and partitions them.
//
// Three document shapes are understood (see types.Layout):
//   - records: {"estimation_results": [{"physical_qubits": 120, "runtime_seconds": 4.5, ...}, ...]}
//   - nested:  {"pareto_estimation_results": [{"hilbert_cutoff": 4, "frontier_results": [...]}, ...]}
//   - columns: {"physical_qubits": 120, "runtime_seconds": 4.5} or parallel arrays of both.
//
// Every scalar field other than the two core fields becomes a categorical tag holding its JSON text.
package results

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"time"

	rerrors "github.com/iafilius/QuantumResourcePlots/src/errors"
	"github.com/iafilius/QuantumResourcePlots/src/logging"
	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// Load parses the document at path using layout.
func Load(path string, layout types.Layout) (*types.ResultSet, error) {
	defer logging.TimeTrack(time.Now(), "load "+path)
	if err := layout.Validate(); err != nil {
		return nil, rerrors.NewInvalidSpec("%v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, rerrors.NewNotFound(path, err)
		}
		return nil, &rerrors.ReportError{Code: rerrors.ErrMalformedInput, Path: path, Message: "read input", Err: err}
	}
	rs, err := Parse(data, layout)
	if err != nil {
		var rErr *rerrors.ReportError
		if errors.As(err, &rErr) && rErr.Path == "" {
			rErr.Path = path
		}
		return nil, err
	}
	rs.Source = path
	logging.Debugf("loaded %d records from %s (layout=%s key=%s)", len(rs.Records), path, layout.Kind, layout.Key)
	return rs, nil
}

// Parse decodes an in-memory document. Errors carry no path.
func Parse(data []byte, layout types.Layout) (*types.ResultSet, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, &rerrors.ReportError{Code: rerrors.ErrMalformedInput, Message: "invalid JSON", Err: err}
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, &rerrors.ReportError{Code: rerrors.ErrMalformedInput, Message: "trailing data after JSON document", Err: err}
	}
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, rerrors.NewMalformedInput("", "top-level value is not an object")
	}
	p := parser{layout: layout}
	switch layout.Kind {
	case types.LayoutRecords:
		items, err := p.array(root, layout.Key, "top-level key")
		if err != nil {
			return nil, err
		}
		for i, item := range items {
			if err := p.record(item, nil, layout.Key, i); err != nil {
				return nil, err
			}
		}
	case types.LayoutNested:
		parents, err := p.array(root, layout.Key, "top-level key")
		if err != nil {
			return nil, err
		}
		for i, item := range parents {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, rerrors.NewMalformedInput("", "%s[%d] is not an object", layout.Key, i)
			}
			inherited := scalarTags(obj, layout.Child)
			children, err := p.array(obj, layout.Child, fmt.Sprintf("%s[%d] key", layout.Key, i))
			if err != nil {
				return nil, err
			}
			for j, child := range children {
				if err := p.record(child, inherited, layout.Key+"["+strconv.Itoa(i)+"]."+layout.Child, j); err != nil {
					return nil, err
				}
			}
		}
	case types.LayoutColumns:
		if err := p.columns(root); err != nil {
			return nil, err
		}
	}
	return &types.ResultSet{Key: layout.Key, Records: p.out}, nil
}

type parser struct {
	layout types.Layout
	out    []types.Record
}

func (p *parser) array(obj map[string]any, key, what string) ([]any, error) {
	raw, ok := obj[key]
	if !ok {
		return nil, rerrors.NewMalformedInput("", "missing %s %q", what, key)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, rerrors.NewMalformedInput("", "%q is not an array", key)
	}
	return items, nil
}

func (p *parser) record(item any, inherited []types.Tag, where string, i int) error {
	obj, ok := item.(map[string]any)
	if !ok {
		return rerrors.NewMalformedInput("", "%s[%d] is not an object", where, i)
	}
	qubits, err := parseQubits(obj[types.FieldPhysicalQubits], hasKey(obj, types.FieldPhysicalQubits))
	if err != nil {
		return rerrors.NewMalformedInput("", "%s[%d]: %v", where, i, err)
	}
	runtime, err := parseRuntime(obj[types.FieldRuntimeSeconds], hasKey(obj, types.FieldRuntimeSeconds))
	if err != nil {
		return rerrors.NewMalformedInput("", "%s[%d]: %v", where, i, err)
	}
	tags := mergeTags(inherited, scalarTags(obj, ""))
	rec := types.Record{Index: len(p.out), PhysicalQubits: qubits, RuntimeSeconds: runtime, Tags: tags}
	for _, req := range p.layout.Required {
		if _, ok := rec.Tag(req); !ok {
			return rerrors.NewMalformedInput("", "%s[%d]: missing required field %q", where, i, req)
		}
	}
	p.out = append(p.out, rec)
	return nil
}

func (p *parser) columns(root map[string]any) error {
	qRaw, okQ := root[types.FieldPhysicalQubits]
	rRaw, okR := root[types.FieldRuntimeSeconds]
	if !okQ {
		return rerrors.NewMalformedInput("", "missing top-level key %q", types.FieldPhysicalQubits)
	}
	if !okR {
		return rerrors.NewMalformedInput("", "missing top-level key %q", types.FieldRuntimeSeconds)
	}
	qs, qIsArr := qRaw.([]any)
	rs, rIsArr := rRaw.([]any)
	if qIsArr != rIsArr {
		return rerrors.NewMalformedInput("", "%q and %q must both be scalars or both arrays", types.FieldPhysicalQubits, types.FieldRuntimeSeconds)
	}
	if !qIsArr {
		qs, rs = []any{qRaw}, []any{rRaw}
	}
	if len(qs) != len(rs) {
		return rerrors.NewMalformedInput("", "column length mismatch: %d physical_qubits vs %d runtime_seconds", len(qs), len(rs))
	}
	shared := scalarTags(root, "")
	for i := range qs {
		obj := map[string]any{types.FieldPhysicalQubits: qs[i], types.FieldRuntimeSeconds: rs[i]}
		if err := p.record(obj, shared, "columns", i); err != nil {
			return err
		}
	}
	return nil
}

func hasKey(obj map[string]any, key string) bool {
	_, ok := obj[key]
	return ok
}

func parseQubits(v any, present bool) (uint64, error) {
	if !present {
		return 0, errors.New(`missing field "physical_qubits"`)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New(`"physical_qubits" is not a number`)
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil || f < 0 || f != math.Trunc(f) || f >= 1<<64 {
		return 0, errors.New(`"physical_qubits" must be a non-negative integer`)
	}
	return uint64(f), nil
}

func parseRuntime(v any, present bool) (float64, error) {
	if !present {
		return 0, errors.New(`missing field "runtime_seconds"`)
	}
	n, ok := v.(json.Number)
	if !ok {
		return 0, errors.New(`"runtime_seconds" is not a number`)
	}
	f, err := n.Float64()
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, errors.New(`"runtime_seconds" must be a non-negative real`)
	}
	return f, nil
}

// scalarTags turns scalar fields (other than the core fields and skip) into tags.
func scalarTags(obj map[string]any, skip string) []types.Tag {
	var tags []types.Tag
	for k, v := range obj {
		if k == skip || k == types.FieldPhysicalQubits || k == types.FieldRuntimeSeconds {
			continue
		}
		var text string
		switch x := v.(type) {
		case json.Number:
			text = x.String()
		case string:
			text = x
		case bool:
			text = strconv.FormatBool(x)
		default:
			continue
		}
		tags = append(tags, types.Tag{Name: k, Value: types.TagValue(text)})
	}
	return types.SortedTags(tags)
}

// mergeTags overlays own on inherited; own wins on name clashes.
func mergeTags(inherited, own []types.Tag) []types.Tag {
	if len(inherited) == 0 {
		return own
	}
	out := make([]types.Tag, 0, len(inherited)+len(own))
	out = append(out, own...)
	for _, t := range inherited {
		clash := false
		for _, o := range own {
			if o.Name == t.Name {
				clash = true
				break
			}
		}
		if !clash {
			out = append(out, t)
		}
	}
	return types.SortedTags(out)
}
