package results

import (
	"math"
	"strings"

	"github.com/iafilius/QuantumResourcePlots/src/types"
)

// GroupBy partitions the result set by the ordered tuple of the requested tag values.
// Groups appear in first-seen order and keep source order within each group; no group is empty.
// With no keys every record lands in one group. A record lacking a tag gets an empty value for it.
func GroupBy(rs *types.ResultSet, keys []string) []types.Group {
	if rs == nil || len(rs.Records) == 0 {
		return nil
	}
	var groups []types.Group
	index := map[string]int{}
	for _, r := range rs.Records {
		key := make([]types.Tag, len(keys))
		parts := make([]string, len(keys))
		for i, k := range keys {
			v, _ := r.Tag(k)
			key[i] = types.Tag{Name: k, Value: v}
			parts[i] = string(v)
		}
		id := strings.Join(parts, "\x00")
		gi, ok := index[id]
		if !ok {
			gi = len(groups)
			index[id] = gi
			groups = append(groups, types.Group{Key: key})
		}
		groups[gi].Records = append(groups[gi].Records, r)
	}
	return groups
}

// Flatten concatenates group contents in group order.
func Flatten(groups []types.Group) []types.Record {
	var out []types.Record
	for _, g := range groups {
		out = append(out, g.Records...)
	}
	return out
}

// GroupSummary aggregates one group for terminal and spreadsheet reports.
type GroupSummary struct {
	Label      string
	Count      int
	MinQubits  uint64
	MaxQubits  uint64
	MinRuntime float64
	MaxRuntime float64
}

// Summarize computes per-group extents.
func Summarize(groups []types.Group) []GroupSummary {
	out := make([]GroupSummary, 0, len(groups))
	for _, g := range groups {
		s := GroupSummary{Label: g.Label(), Count: len(g.Records), MinQubits: math.MaxUint64, MinRuntime: math.Inf(1)}
		for _, r := range g.Records {
			s.MinQubits = min(s.MinQubits, r.PhysicalQubits)
			s.MaxQubits = max(s.MaxQubits, r.PhysicalQubits)
			s.MinRuntime = math.Min(s.MinRuntime, r.RuntimeSeconds)
			s.MaxRuntime = math.Max(s.MaxRuntime, r.RuntimeSeconds)
		}
		if s.Label == "" {
			s.Label = "(all)"
		}
		out = append(out, s)
	}
	return out
}
