package sagtension

import (
	"context"
	"runtime"
	"sync"
)

// BatchResult is the outcome of one reload in a batch
type BatchResult struct {
	Result *Result
	Err    error
}

// ReloadAll runs independent reloads on a pool of workers. Results keep the
// order of reloaders. Reloads not started before ctx is done report the
// context error. workers < 1 uses one worker per CPU.
func ReloadAll(ctx context.Context, reloaders []Reloader, workers int) []BatchResult {
	results := make([]BatchResult, len(reloaders))
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				res, err := reloaders[i].Reload()
				results[i] = BatchResult{Result: res, Err: err}
			}
		}()
	}

send:
	for i := range reloaders {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(reloaders); j++ {
				results[j].Err = ctx.Err()
			}
			break send
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

// TemperatureSweep returns one reloader per temperature, each a copy of base
// with the reloaded temperature replaced.
func TemperatureSweep(base Reloader, temperatures []float64) []Reloader {
	reloaders := make([]Reloader, len(temperatures))
	for i, t := range temperatures {
		r := base
		r.StateReloaded.Temperature = t
		reloaders[i] = r
	}
	return reloaders
}
