package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/fintechpulse/pulse-cms/internal/api/metrics"
	"github.com/fintechpulse/pulse-cms/internal/core/domain"
	"github.com/fintechpulse/pulse-cms/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes article view events to a fixed set of workers using
// consistent hashing on the article slug, so all views of one article are
// counted by the same worker.
type Dispatcher struct {
	workers []chan domain.ViewEvent
	service ports.ViewService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.ViewService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.ViewEvent, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ViewEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a view event to the worker responsible for its slug. Events
// are dropped when the worker channel is full: view counting is best effort
// and must never block or fail the read path.
func (d *Dispatcher) Enqueue(event domain.ViewEvent) {
	idx := d.shardIndex(event.Slug)
	select {
	case d.workers[idx] <- event:
		metrics.ViewQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		d.log.Warn().Str("slug", event.Slug).Int("worker_id", idx).Msg("view queue full, event dropped")
	}
}

// shardIndex maps a slug deterministically to a worker index.
func (d *Dispatcher) shardIndex(slug string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(slug))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ViewEvent) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			metrics.ViewQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))

			start := time.Now()
			if err := d.service.Process(ctx, event); err != nil {
				metrics.ViewsProcessedTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).
					Str("slug", event.Slug).
					Int("worker_id", id).
					Msg("view event processing failed")
			} else {
				metrics.ViewsProcessedTotal.WithLabelValues("ok").Inc()
			}
			metrics.ViewProcessingDuration.Observe(time.Since(start).Seconds())
		}
	}
}
