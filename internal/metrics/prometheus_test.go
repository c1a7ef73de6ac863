package metrics

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := New()
	r.RecordRun("A", nil, 10*time.Millisecond)
	r.RecordRun("A", errors.New("boom"), time.Millisecond)
	r.RecordParsed("kline", 120)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("A", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.runs.WithLabelValues("A", "error")))
	assert.Equal(t, 120.0, testutil.ToFloat64(r.records.WithLabelValues("kline")))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "klinescope_pipeline_runs_total")
}
