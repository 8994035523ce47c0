package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/peakform/fitness-api/internal/api/metrics"
	"github.com/peakform/fitness-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes check-in jobs to a fixed set of workers using consistent
// hashing on the phone number, guaranteeing per-recipient delivery ordering.
type Dispatcher struct {
	workers   []chan ports.CheckInJob
	messenger ports.Messenger
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, messenger ports.Messenger, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan ports.CheckInJob, numWorkers),
		messenger: messenger,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.CheckInJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its phone number.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(job ports.CheckInJob) {
	idx := d.shardIndex(job.Phone)
	d.workers[idx] <- job
	metrics.RemindersQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a phone number deterministically to a worker index.
func (d *Dispatcher) shardIndex(phone string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(phone))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.CheckInJob) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			metrics.RemindersQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.messenger.Send(ctx, job.Phone, job.Body); err != nil {
				metrics.RemindersSentTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("job_id", job.ID).
					Int("worker_id", id).
					Msg("check-in delivery failed")
				continue
			}
			metrics.RemindersSentTotal.WithLabelValues("ok").Inc()
		}
	}
}
