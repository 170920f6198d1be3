package filter

import (
	"context"
	"runtime"
	"sync"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the record count below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large record lists into chunks evaluated on a worker pool
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
	}

	for _, opt := range opts {
		opt(e)
	}
	if e.workerCount <= 0 {
		e.workerCount = 1
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate returns the records matching filter, keeping their order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error) {
	if len(records) == 0 {
		return []Record{}, nil
	}

	if len(records) < e.batchSize {
		return evaluateChunk(filter, records), nil
	}

	return e.evaluateConcurrent(ctx, filter, records)
}

func evaluateChunk(filter CompiledFilter, records []Record) []Record {
	matches := make([]Record, 0, len(records))
	for _, record := range records {
		if filter.Evaluate(record) {
			matches = append(matches, record)
		}
	}
	return matches
}

func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, records []Record) ([]Record, error) {
	chunkSize := max(len(records)/e.workerCount, e.batchSize)
	chunkCount := (len(records) + chunkSize - 1) / chunkSize

	// Each chunk writes only its own slot
	results := make([][]Record, chunkCount)
	var wg sync.WaitGroup

	for index := 0; index < chunkCount; index++ {
		start := index * chunkSize
		chunk := records[start:min(start+chunkSize, len(records))]

		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()

			select {
			case <-ctx.Done():
				return
			default:
			}

			results[index] = evaluateChunk(filter, chunk)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, matches := range results {
		total += len(matches)
	}

	all := make([]Record, 0, total)
	for _, matches := range results {
		all = append(all, matches...)
	}

	return all, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
