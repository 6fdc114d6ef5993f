package catalog

import (
	"fmt"
	"sync"

	"github.com/firasghr/browserprint/chello"
	"github.com/firasghr/browserprint/worker"
)

// WarmupFailure records a profile whose ClientHelloSpec failed to assemble.
type WarmupFailure struct {
	Profile string
	Err     error
}

// WarmupReport summarizes a catalog-wide validation pass.
type WarmupReport struct {
	Checked  int
	Failures []WarmupFailure
}

// Warmup assembles every catalog profile's ClientHelloSpec against a
// placeholder server name, concurrently across workerCount goroutines, and
// reports any that fail to assemble. It exists so an operator can catch a
// malformed profile entry (oversized extension, bad curve list) at startup
// rather than on a live request, without forcing every profile through a
// live TLS handshake.
func Warmup(workerCount int) WarmupReport {
	profiles := All()

	var (
		mu     sync.Mutex
		report WarmupReport
		wg     sync.WaitGroup
	)

	pool := worker.NewWorkerPool(workerCount)
	pool.Start()

	for _, p := range profiles {
		p := p
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			if _, err := chello.Assemble(p.Spec, "warmup.invalid"); err != nil {
				mu.Lock()
				report.Failures = append(report.Failures, WarmupFailure{
					Profile: p.Name,
					Err:     fmt.Errorf("assemble: %w", err),
				})
				mu.Unlock()
			}
		})
	}

	wg.Wait()
	pool.Stop()

	report.Checked = len(profiles)
	return report
}
