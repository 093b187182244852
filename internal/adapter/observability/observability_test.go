package observability

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/fairyhunter13/ai-interview-coach/internal/config"
)

var initOnce sync.Once

func initMetricsOnce() {
	initOnce.Do(InitMetrics)
}

func TestSetupLogger_DevAndProd(t *testing.T) {
	lg := SetupLogger(config.Config{AppEnv: "dev"})
	if lg == nil {
		t.Fatalf("nil logger")
	}
	lg2 := SetupLogger(config.Config{AppEnv: "prod"})
	if lg2 == nil {
		t.Fatalf("nil logger prod")
	}
}

func TestHTTPMetricsMiddleware(t *testing.T) {
	initMetricsOnce()
	h := HTTPMetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/validate/job", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestObservers(t *testing.T) {
	initMetricsOnce()
	ObserveValidation("job_description", false, "")
	ObserveValidation("resume_summary", true, "security")
	ObserveScores(85, 60, 45)
	// Out-of-range scores must be dropped, not panic.
	ObserveScores(-1, 101, 50)
	ObserveGeneration("ok", 120*time.Millisecond)
	ObserveGeneration("blocked", time.Millisecond)
}
