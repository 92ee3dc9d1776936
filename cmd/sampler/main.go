// Package main implements the sampler demo: a fixed five-worker
// fan-out/fan-in with randomized work durations. Completion order is
// non-deterministic; the program always waits for every worker before
// printing the final line.
package main

import (
	"os"

	"github.com/tasklab/task-api/internal/sampler"
)

func main() {
	group := sampler.NewGroup(sampler.DefaultConfig(os.Stdout))
	group.Run()
}
