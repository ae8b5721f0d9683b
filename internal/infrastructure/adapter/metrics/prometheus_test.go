package metrics

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreport "github.com/logifin/wallet-ledger/internal/domain/port/core"
)

func TestPrometheus_ObserveOperation(t *testing.T) {
	p := NewPrometheus()

	p.ObserveOperation("withdraw", coreport.OutcomeSuccess, coreport.Duration(3*time.Millisecond))
	p.ObserveOperation("withdraw", coreport.OutcomeRejected, coreport.Duration(time.Millisecond))
	p.ObserveOperation("withdraw", coreport.OutcomeRejected, coreport.Duration(time.Millisecond))

	assert.Equal(t, 1.0, testutil.ToFloat64(p.operations.WithLabelValues("withdraw", coreport.OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.operations.WithLabelValues("withdraw", coreport.OutcomeRejected)))
}

func TestPrometheus_Counters(t *testing.T) {
	p := NewPrometheus()

	p.IncRetry("invest")
	p.IncPublishFailure()
	p.IncPublishFailure()
	p.ObservePool(sql.DBStats{OpenConnections: 4, InUse: 3, Idle: 1})

	assert.Equal(t, 1.0, testutil.ToFloat64(p.retries.WithLabelValues("invest")))
	assert.Equal(t, 2.0, testutil.ToFloat64(p.publishFailures))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.poolInUse))
}

func TestPrometheus_PoolWaitsAreCounters(t *testing.T) {
	p := NewPrometheus()

	p.ObservePool(sql.DBStats{WaitCount: 3, WaitDuration: 250 * time.Millisecond})
	p.ObservePool(sql.DBStats{WaitCount: 7, WaitDuration: 1500 * time.Millisecond})

	families, err := p.Registry().Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		switch mf.GetName() {
		case "wallet_ledger_db_wait_total", "wallet_ledger_db_wait_duration_seconds_total":
			require.Equal(t, dto.MetricType_COUNTER, mf.GetType(), mf.GetName())
			require.Len(t, mf.GetMetric(), 1)
			values[mf.GetName()] = mf.GetMetric()[0].GetCounter().GetValue()
		case "wallet_ledger_db_wait_count":
			t.Fatalf("cumulative wait count must not be exported as a gauge")
		}
	}
	assert.Equal(t, 7.0, values["wallet_ledger_db_wait_total"])
	assert.InDelta(t, 1.5, values["wallet_ledger_db_wait_duration_seconds_total"], 1e-9)
}

func TestPrometheus_Handler(t *testing.T) {
	p := NewPrometheus()
	p.ObserveHTTP("/wallets/:userId", http.MethodGet, "200", coreport.Duration(time.Millisecond))

	rec := httptest.NewRecorder()
	p.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, "wallet_ledger_http_requests_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
