package results

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/QuantumResourcePlots/src/types"
)

const displacementDoc = `{"results": [
	{"method": "pauli_decomp", "K": 7, "frontier_results": [{"physical_qubits": 10, "runtime_seconds": 5}, {"physical_qubits": 20, "runtime_seconds": 4}]},
	{"method": "newton_iterations", "K": 7, "frontier_results": [{"physical_qubits": 30, "runtime_seconds": 3}]},
	{"method": "pauli_decomp", "K": 63, "frontier_results": [{"physical_qubits": 40, "runtime_seconds": 2}]},
	{"method": "newton_iterations", "K": 63, "frontier_results": [{"physical_qubits": 50, "runtime_seconds": 1}]},
	{"method": "pauli_decomp", "K": 7, "frontier_results": [{"physical_qubits": 60, "runtime_seconds": 0.5}]}]}`

func loadDisplacement(t *testing.T) *types.ResultSet {
	t.Helper()
	rs, err := Parse([]byte(displacementDoc), types.Layout{Kind: types.LayoutNested, Key: "results", Child: "frontier_results"})
	require.NoError(t, err)
	return rs
}

func TestGroupByMethodAndCutoff(t *testing.T) {
	rs := loadDisplacement(t)
	groups := GroupBy(rs, []string{"method", "K"})
	require.Len(t, groups, 4)

	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = g.Label()
		assert.NotEmpty(t, g.Records)
	}
	want := []string{"method=pauli_decomp, K=7", "method=newton_iterations, K=7", "method=pauli_decomp, K=63", "method=newton_iterations, K=63"}
	if diff := cmp.Diff(want, labels); diff != "" {
		t.Fatalf("group order mismatch (-want +got):\n%s", diff)
	}

	// Records joining an earlier group keep source order inside it.
	var qubits []uint64
	for _, r := range groups[0].Records {
		qubits = append(qubits, r.PhysicalQubits)
	}
	assert.Equal(t, []uint64{10, 20, 60}, qubits)
}

func TestGroupByPartitionsEveryRecordOnce(t *testing.T) {
	rs := loadDisplacement(t)
	for _, keys := range [][]string{nil, {"method"}, {"K"}, {"method", "K"}, {"absent"}} {
		groups := GroupBy(rs, keys)
		seen := map[int]int{}
		for _, r := range Flatten(groups) {
			seen[r.Index]++
		}
		require.Len(t, seen, len(rs.Records), "keys=%v", keys)
		for idx, n := range seen {
			assert.Equal(t, 1, n, "record %d grouped %d times (keys=%v)", idx, n, keys)
		}
	}
}

func TestGroupByConstantKeyPreservesSequence(t *testing.T) {
	rs := loadDisplacement(t)
	groups := GroupBy(rs, []string{"absent"})
	require.Len(t, groups, 1)
	if diff := cmp.Diff(rs.Records, Flatten(groups)); diff != "" {
		t.Fatalf("flattened constant grouping differs (-want +got):\n%s", diff)
	}
	assert.Equal(t, types.TagValue(""), groups[0].Key[0].Value)
}

func TestGroupByEmpty(t *testing.T) {
	assert.Nil(t, GroupBy(&types.ResultSet{}, []string{"method"}))
	assert.Nil(t, GroupBy(nil, nil))
}

func TestSummarize(t *testing.T) {
	groups := GroupBy(loadDisplacement(t), []string{"method"})
	sums := Summarize(groups)
	require.Len(t, sums, 2)
	assert.Equal(t, GroupSummary{Label: "method=pauli_decomp", Count: 4, MinQubits: 10, MaxQubits: 60, MinRuntime: 0.5, MaxRuntime: 5}, sums[0])
	all := Summarize(GroupBy(loadDisplacement(t), nil))
	assert.Equal(t, "(all)", all[0].Label)
}
