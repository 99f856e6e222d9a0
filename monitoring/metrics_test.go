package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cmu-health/models"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *Metrics {
	return NewMetrics([]models.Department{"Cardiology", "Neurology"}, models.AvailabilityStatuses)
}

func TestCounters(t *testing.T) {
	m := newTestMetrics()

	m.RecordBooking("Cardiology")
	m.RecordBooking("Cardiology")
	m.RecordValidationFailure("email")
	m.RecordAdminLogin(false)
	m.RecordAdminLogin(true)
	m.RecordDroppedHistoryLines(3)
	m.RecordDroppedHistoryLines(0)
	m.RecordAvailabilityUpdate("Available")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("Cardiology")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("email")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adminLoginsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.adminLoginsTotal.WithLabelValues("success")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.historyLinesDropped))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityUpdates.WithLabelValues("Available")))
}

func TestUnknownLabelsCollapseToOther(t *testing.T) {
	m := newTestMetrics()

	m.RecordBooking("Cardiology")
	m.RecordBooking("junk-1")
	m.RecordBooking("junk-2")
	m.RecordAvailabilityUpdate("Maybe")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues("Cardiology")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsTotal.WithLabelValues(otherLabel)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.availabilityUpdates.WithLabelValues(otherLabel)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.bookingsTotal))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, hook := test.NewNullLogger()
	m := newTestMetrics()

	r := gin.New()
	r.Use(RequestLogger(log, m))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bad", nil))

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.InfoLevel, entries[0].Level)
	assert.Equal(t, logrus.WarnLevel, entries[1].Level)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues(http.MethodGet, "/ok", "200")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "cmu_health_http_requests_total")
}
