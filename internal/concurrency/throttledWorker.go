package concurrency

import (
	"time"
)

// ThrottledWorker spaces jobs out over time, so a burst of commands
// doesn't trip the bridge's rate limiting.
type ThrottledWorker struct {
	interval    time.Duration
	jobCallback func(arg string) error
}

func NewThrottledWorker(interval time.Duration, jobCallback func(arg string) error) ThrottledWorker {
	return ThrottledWorker{interval: interval, jobCallback: jobCallback}
}

// Run calls the job callback once per argument, at most one call per
// interval. Errors are collected rather than stopping the run.
func (w *ThrottledWorker) Run(jobArgs []string) []error {

	jobArgsChannel := make(chan string, len(jobArgs))

	for _, arg := range jobArgs {
		jobArgsChannel <- arg
	}
	close(jobArgsChannel)
	limiter := time.NewTicker(w.interval)
	defer limiter.Stop()

	var errs []error

	for arg := range jobArgsChannel {
		<-limiter.C
		if err := w.jobCallback(arg); err != nil {
			errs = append(errs, err)
		}
	}

	return errs
}
