package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/donut/engine/core"
)

/**
 * @brief A unit of work for the job system. Run executes on a worker;
 * exactly one of OnFailure or OnComplete follows it on the same worker.
 */
type JobTask struct {
	Run        func() error
	OnFailure  func(err error)
	OnComplete func()
	// Called after OnFailure or OnComplete in every case.
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	jq := make(chan JobTask, channelSize)
	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   jq,
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				if err := job.Run(); err != nil {
					core.LogDebug("job failed: %s", err)
					if job.OnFailure != nil {
						job.OnFailure(err)
					}
				} else if job.OnComplete != nil {
					job.OnComplete()
				}

				if job.OnCompletionCallback != nil {
					job.OnCompletionCallback()
				}
			}
		}()
	}
}

func (js *JobSystem) Workers() int {
	return js.numWorkers
}

/**
 * @brief Shuts the job system down once every queued job has run. No job
 * may be submitted afterwards.
 */
func (js *JobSystem) Shutdown() error {
	close(js.jobQueue)
	js.wg.Wait()
	return nil
}

/**
 * @brief Submits the provided job to be queued for execution. Blocks
 * while the queue is full.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}
