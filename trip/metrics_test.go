package trip

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSolve_FlushesCounters(t *testing.T) {
	okBefore := testutil.ToFloat64(solveTotal.WithLabelValues("ok"))
	errBefore := testutil.ToFloat64(solveTotal.WithLabelValues("error"))
	branchesBefore := testutil.ToFloat64(branchesTotal)
	pathPrunesBefore := testutil.ToFloat64(prunesTotal.WithLabelValues("path"))

	var st Stats
	_, err := Solve(5, []int{1, 3, 0, 3, 2, 4, 4}, []int{6, 2, 7, 5, 6, 5, 2}, WithStats(&st))
	require.NoError(t, err)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(solveTotal.WithLabelValues("ok")))
	assert.Equal(t, errBefore, testutil.ToFloat64(solveTotal.WithLabelValues("error")))
	assert.Equal(t, branchesBefore+float64(st.Branches), testutil.ToFloat64(branchesTotal))
	assert.Equal(t, pathPrunesBefore+float64(st.PathPrunes), testutil.ToFloat64(prunesTotal.WithLabelValues("path")))
}
