package workerpool

import (
	"context"
	"sync"
)

// Job represents the job to be run
type Job[T any] struct {
	Task func(ctx context.Context) (T, error)
}

// JobResult represents the result of a job
type JobResult[T any] struct {
	Result T
	Err    error
}

// Dispatcher runs jobs on a bounded number of workers.
type Dispatcher[T any] struct {
	MaxWorkers int
}

func NewDispatcher[T any](maxWorkers int) *Dispatcher[T] {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Dispatcher[T]{
		MaxWorkers: maxWorkers,
	}
}

// Run executes jobs and blocks until all of them are done.
// Results are returned in job order. Jobs that have not started when ctx
// is cancelled are not run and report ctx.Err().
func (d *Dispatcher[T]) Run(ctx context.Context, jobs []Job[T]) []JobResult[T] {
	results := make([]JobResult[T], len(jobs))

	jobQueue := make(chan int)

	workers := d.MaxWorkers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobQueue {
				if err := ctx.Err(); err != nil {
					results[index] = JobResult[T]{Err: err}
					continue
				}

				result, err := jobs[index].Task(ctx)
				results[index] = JobResult[T]{Result: result, Err: err}
			}
		}()
	}

	for i := range jobs {
		jobQueue <- i
	}
	close(jobQueue)

	wg.Wait()

	return results
}
