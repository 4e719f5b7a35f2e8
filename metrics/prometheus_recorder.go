package metrics

import (
	"strconv"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus counters.
type PrometheusRecorder struct {
	verdicts *prom.CounterVec
	failures *prom.CounterVec
}

// NewPrometheusRecorder constructs the counters and registers them with
// reg; a nil registry gets a private one.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}

	pr := &PrometheusRecorder{
		verdicts: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "mongocore",
			Name:      "command_verdicts_total",
			Help:      "Command replies by the verdict of their ok field",
		}, []string{"verdict"}),
		failures: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "mongocore",
			Name:      "command_failures_total",
			Help:      "Errors produced for command replies by variant and server code",
		}, []string{"kind", "code"}),
	}

	reg.MustRegister(pr.verdicts, pr.failures)

	return pr
}

func (p *PrometheusRecorder) IncVerdict(ok bool) {
	if p == nil || p.verdicts == nil {
		return
	}

	verdict := "not_ok"
	if ok {
		verdict = "ok"
	}
	p.verdicts.WithLabelValues(verdict).Inc()
}

func (p *PrometheusRecorder) IncFailure(kind string, code int) {
	if p == nil || p.failures == nil {
		return
	}
	p.failures.WithLabelValues(kind, strconv.Itoa(code)).Inc()
}
