package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Ops = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lms", Name: "ops_total", Help: "Dashboard operations",
	}, []string{"op"})
	OpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lms", Name: "op_errors_total", Help: "Dashboard operation errors",
	}, []string{"op"})
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lms", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Ops, OpErrors, DBPing)
}

func Handler() http.Handler { return promhttp.Handler() }

func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

// ObserveOp инкрементит счётчики операции; err == nil — только успех.
func ObserveOp(op string, err error) {
	Ops.WithLabelValues(op).Inc()
	if err != nil {
		OpErrors.WithLabelValues(op).Inc()
	}
}
