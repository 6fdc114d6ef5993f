package metrics_test

import (
	"sync"
	"testing"

	"github.com/firasghr/browserprint/metrics"
)

func TestIncrements(t *testing.T) {
	m := metrics.NewMetrics()
	m.IncrementTotal()
	m.IncrementTotal()
	m.IncrementSuccess()
	m.IncrementFailed()
	m.IncrementFallbackH3ToH2()
	m.IncrementFallbackH2ToH1()

	total, success, failed, fallbackH3H2, fallbackH2H1 := m.Snapshot()
	if total != 2 {
		t.Errorf("TotalRequests: got %d, want 2", total)
	}
	if success != 1 {
		t.Errorf("Success: got %d, want 1", success)
	}
	if failed != 1 {
		t.Errorf("Failed: got %d, want 1", failed)
	}
	if fallbackH3H2 != 1 {
		t.Errorf("FallbackH3ToH2: got %d, want 1", fallbackH3H2)
	}
	if fallbackH2H1 != 1 {
		t.Errorf("FallbackH2ToH1: got %d, want 1", fallbackH2H1)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := metrics.NewMetrics()
	const goroutines = 1000
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			m.IncrementTotal()
			m.IncrementSuccess()
		}()
	}
	wg.Wait()

	total, success, _, _, _ := m.Snapshot()
	if total != goroutines {
		t.Errorf("TotalRequests: got %d, want %d", total, goroutines)
	}
	if success != goroutines {
		t.Errorf("Success: got %d, want %d", success, goroutines)
	}
}
