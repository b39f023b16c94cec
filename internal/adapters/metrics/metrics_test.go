package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Purchases(t *testing.T) {
	r := NewRecorder()

	r.PurchaseRecorded("success")
	r.PurchaseRecorded("success")
	r.PurchaseRecorded("out_of_stock")

	expected := `
		# HELP retail_purchases_total Total number of purchase attempts by result.
		# TYPE retail_purchases_total counter
		retail_purchases_total{result="out_of_stock"} 1
		retail_purchases_total{result="success"} 2
	`
	assert.NoError(t, testutil.CollectAndCompare(r.purchasesTotal, strings.NewReader(expected)))
}

func TestRecorder_LoyaltyPoints(t *testing.T) {
	r := NewRecorder()

	r.LoyaltyPointsAwarded(5)
	r.LoyaltyPointsAwarded(60)
	r.LoyaltyPointsAwarded(0)

	assert.Equal(t, float64(65), testutil.ToFloat64(r.loyaltyPointsTotal))
}

func TestRecorder_LoginsAndSignups(t *testing.T) {
	r := NewRecorder()

	r.LoginRecorded(true)
	r.LoginRecorded(false)
	r.LoginRecorded(false)
	r.SignupRecorded()

	assert.Equal(t, float64(1), testutil.ToFloat64(r.loginsTotal.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(r.loginsTotal.WithLabelValues("failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.signupsTotal))
}

func TestRecorder_ObserveRequest(t *testing.T) {
	r := NewRecorder()

	r.ObserveRequest(http.MethodGet, "/api/v1/products", http.StatusOK, 10*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("GET", "/api/v1/products", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(r.httpRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 2, testutil.CollectAndCount(r.httpRequestDuration))
}

func TestRecorder_Handler(t *testing.T) {
	r := NewRecorder()
	r.PurchaseRecorded("success")

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `retail_purchases_total{result="success"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
