// Package sampler implements a fixed fan-out/fan-in concurrency
// demonstration: a bounded group of workers with randomized durations,
// a WaitGroup completion barrier, and a signaling channel that is closed
// once every worker has finished.
package sampler

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
	"time"
)

// DefaultWorkerCount is the number of workers the demo launches.
const DefaultWorkerCount = 5

// maxWorkDuration bounds the simulated work: each worker sleeps for a
// pseudo-random duration in [0, maxWorkDuration).
const maxWorkDuration = 3 * time.Second

// Config holds configuration for a sampler Group.
type Config struct {
	// WorkerCount is the number of workers to launch. Workers are
	// identified 1..WorkerCount.
	WorkerCount int

	// Delay produces the simulated work duration for a worker.
	// If nil, a pseudo-random duration in [0, 3s) is used. Tests inject
	// a zero delay here to make runs deterministic.
	Delay func(workerID int) time.Duration

	// Output receives the start/completion lines. Must not be nil.
	Output io.Writer
}

// DefaultConfig returns a Config for the standard five-worker demo
// writing to the given writer.
func DefaultConfig(output io.Writer) Config {
	return Config{
		WorkerCount: DefaultWorkerCount,
		Output:      output,
	}
}

// Group is a fixed-size fan-out of workers with a completion barrier.
// The zero value is not usable; construct with NewGroup.
type Group struct {
	config Config

	mu sync.Mutex // serializes writes to config.Output
}

// NewGroup creates a Group from the given config, applying defaults for
// missing values.
func NewGroup(config Config) *Group {
	if config.WorkerCount <= 0 {
		config.WorkerCount = DefaultWorkerCount
	}
	if config.Delay == nil {
		config.Delay = func(int) time.Duration {
			return time.Duration(rand.Int64N(int64(maxWorkDuration)))
		}
	}
	return &Group{config: config}
}

// Run launches the workers, blocks until every one has completed, and then
// returns. Completion order among workers is non-deterministic; the only
// guarantee is that all workers have finished when Run returns.
//
// Each worker announces its start, sleeps for its drawn duration, announces
// completion, and signals the shared done channel. A supervisor goroutine
// closes the channel after the WaitGroup barrier releases, and Run drains
// the channel until it is closed.
func (g *Group) Run() {
	var wg sync.WaitGroup
	done := make(chan int)

	for i := 1; i <= g.config.WorkerCount; i++ {
		wg.Add(1)
		go g.work(i, &wg, done)
	}

	// Single writer of the close: the supervisor. Run below is the single
	// reader, so the drain loop exits exactly once.
	go func() {
		wg.Wait()
		close(done)
	}()

	for range done {
		// Drain completion signals until the channel closes. The values
		// carry no data beyond "one worker finished".
	}

	g.printf("All workers completed\n")
}

// work is the body of a single worker goroutine.
func (g *Group) work(id int, wg *sync.WaitGroup, done chan<- int) {
	defer wg.Done()

	g.printf("Worker %d starting\n", id)
	time.Sleep(g.config.Delay(id))
	g.printf("Worker %d completed\n", id)

	done <- id
}

// printf writes a single output line under the group mutex so concurrent
// workers never interleave partial lines.
func (g *Group) printf(format string, args ...any) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fmt.Fprintf(g.config.Output, format, args...)
}
