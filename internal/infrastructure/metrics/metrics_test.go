package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()

	m := New(registry)

	if m.EventsApplied == nil || m.EventsRejected == nil || m.OpenDisputes == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.EventsApplied.WithLabelValues("deposit").Inc()
	m.EventsRejected.WithLabelValues("withdrawal", "insufficient_funds").Inc()

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}

	if got := testutil.ToFloat64(m.EventsApplied.WithLabelValues("deposit")); got != 1 {
		t.Fatalf("expected 1 applied deposit, got %v", got)
	}
}

func TestNewTwiceOnSameRegistryPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	New(registry)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected duplicate registration to panic")
		}
	}()
	New(registry)
}

func TestWriteTextfile(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := New(registry)
	m.RecordsMalformed.Add(3)

	path := filepath.Join(t.TempDir(), "txengine.prom")
	if err := WriteTextfile(path, registry); err != nil {
		t.Fatalf("write textfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}

	if !strings.Contains(string(data), "txengine_records_malformed_total 3") {
		t.Fatalf("expected malformed counter in output, got:\n%s", data)
	}
}
