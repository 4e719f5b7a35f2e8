package metrics

import (
	"testing"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	t.Run("Implements", func(t *testing.T) {
		assert.Implements(t, (*Recorder)(nil), &PrometheusRecorder{})
		assert.Implements(t, (*Recorder)(nil), NoopRecorder{})
	})
	t.Run("Counts", func(t *testing.T) {
		reg := prom.NewRegistry()
		rec := NewPrometheusRecorder(reg)

		rec.IncVerdict(true)
		rec.IncVerdict(true)
		rec.IncVerdict(false)
		rec.IncFailure("duplicate_key", 11000)
		rec.IncFailure("command_failure", -5)
		rec.IncFailure("command_failure", -5)

		families, err := reg.Gather()
		require.NoError(t, err)

		counts := map[string]float64{}
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				// label pairs come back sorted by label name
				key := mf.GetName()
				for _, lp := range m.GetLabel() {
					key += "/" + lp.GetValue()
				}
				counts[key] = m.GetCounter().GetValue()
			}
		}

		assert.Equal(t, map[string]float64{
			"mongocore_command_verdicts_total/ok":                  2,
			"mongocore_command_verdicts_total/not_ok":              1,
			"mongocore_command_failures_total/11000/duplicate_key": 1,
			"mongocore_command_failures_total/-5/command_failure":  2,
		}, counts)
	})
	t.Run("DoubleRegistrationPanics", func(t *testing.T) {
		reg := prom.NewRegistry()
		NewPrometheusRecorder(reg)
		assert.Panics(t, func() { NewPrometheusRecorder(reg) })
	})
	t.Run("NilRegistry", func(t *testing.T) {
		assert.NotPanics(t, func() {
			NewPrometheusRecorder(nil).IncVerdict(true)
			NewPrometheusRecorder(nil).IncVerdict(true)
		})
	})
	t.Run("NilRecorder", func(t *testing.T) {
		var rec *PrometheusRecorder
		assert.NotPanics(t, func() {
			rec.IncVerdict(false)
			rec.IncFailure("write_failure", 64)
		})
	})
}
