package te_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/teflow/demand"
	"github.com/katalvlaran/teflow/ksp"
)

func demandFromPairs(n int, vols map[ksp.Pair]float64) (*demand.Matrix, error) {
	dm, err := demand.New(n)
	if err != nil {
		return nil, err
	}
	for p, v := range vols {
		if err = dm.Set(p.Src, p.Dst, v); err != nil {
			return nil, err
		}
	}

	return dm, nil
}

// gaugeValue gathers reg and returns the value of the unlabelled gauge name.
func gaugeValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("gauge %s not found", name)

	return 0
}
