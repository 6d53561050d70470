package workers

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
	"saksham-engine/internal/matching"
	"saksham-engine/internal/metrics"
	"saksham-engine/pkg/models"
	"saksham-engine/pkg/utils"
)

// RankResult represents the result of a ranking job
type RankResult struct {
	Response  *models.MatchResponse
	Error     error
	RequestID string
	Duration  time.Duration
}

// RankJob represents a job to be processed by workers
type RankJob struct {
	ID          string
	Profile     *models.Profile
	Internships []models.Internship
	Filters     *models.FilterState
	Options     *models.SmartFilterOptions
	ClientID    string
	ResultChan  chan RankResult
	Context     context.Context
	CreatedAt   time.Time
}

// Worker represents a single worker goroutine
type Worker struct {
	ID       int
	JobChan  chan RankJob
	QuitChan chan bool
	Pool     *WorkerPool
	rng      *rand.Rand
	logger   logging.Logger
}

// WorkerPool manages multiple worker goroutines and job queue
type WorkerPool struct {
	config      *config.Config
	workers     []*Worker
	jobQueue    chan RankJob
	dispatcher  *Dispatcher
	rateLimiter *RateLimiter
	logger      logging.Logger
	mu          sync.RWMutex
	running     bool
	stats       *PoolStats
}

// PoolStats tracks worker pool statistics
type PoolStats struct {
	mu                    sync.RWMutex
	JobsQueued            int64
	JobsProcessed         int64
	JobsSuccessful        int64
	JobsFailed            int64
	TotalProcessingTime   time.Duration
	AverageProcessingTime time.Duration
}

// PoolStatsData is the lock-free snapshot of PoolStats used in responses.
type PoolStatsData struct {
	JobsQueued            int64         `json:"jobs_queued"`
	JobsProcessed         int64         `json:"jobs_processed"`
	JobsSuccessful        int64         `json:"jobs_successful"`
	JobsFailed            int64         `json:"jobs_failed"`
	AverageProcessingTime time.Duration `json:"average_processing_time"`
}

// NewWorkerPool creates a new worker pool instance
func NewWorkerPool(cfg *config.Config) *WorkerPool {
	logger := logging.GetGlobalLogger()

	pool := &WorkerPool{
		config:      cfg,
		jobQueue:    make(chan RankJob, cfg.Workers.QueueSize),
		rateLimiter: NewRateLimiter(cfg),
		logger:      logger,
		stats:       &PoolStats{},
	}

	// Each worker carries its own rng so fallback scoring never contends
	pool.workers = make([]*Worker, cfg.Workers.PoolSize)
	for i := 0; i < cfg.Workers.PoolSize; i++ {
		worker := &Worker{
			ID:       i + 1,
			JobChan:  make(chan RankJob),
			QuitChan: make(chan bool),
			Pool:     pool,
			rng:      rand.New(rand.NewSource(time.Now().UnixNano() + int64(i))),
			logger:   logger.WithField("worker_id", i+1),
		}
		pool.workers[i] = worker
	}

	pool.dispatcher = NewDispatcher(pool.jobQueue, pool.workers)

	logger.Info("Worker pool initialized", map[string]interface{}{
		"pool_size": cfg.Workers.PoolSize,
	})
	return pool
}

// Start starts the worker pool
func (wp *WorkerPool) Start() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if wp.running {
		return fmt.Errorf("worker pool is already running")
	}

	wp.logger.Info("Starting worker pool")

	wp.dispatcher.Start()

	for _, worker := range wp.workers {
		go worker.Start()
	}

	wp.running = true
	wp.logger.Info("Worker pool started successfully", map[string]interface{}{
		"workers": len(wp.workers),
	})
	return nil
}

// Stop stops the worker pool gracefully
func (wp *WorkerPool) Stop() error {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if !wp.running {
		return nil
	}

	wp.logger.Info("Stopping worker pool")

	// Dispatcher first so no new jobs reach workers
	wp.dispatcher.Stop()

	for _, worker := range wp.workers {
		worker.Stop()
	}

	close(wp.jobQueue)

	wp.running = false
	wp.logger.Info("Worker pool stopped successfully")
	return nil
}

// SubmitJob submits a new ranking job to the pool and waits for its result.
func (wp *WorkerPool) SubmitJob(ctx context.Context, req *models.MatchRequest, internships []models.Internship) (*RankResult, error) {
	if !wp.IsRunning() {
		return nil, fmt.Errorf("worker pool is not running")
	}

	clientID := clientKey(req.ClientID)
	if !wp.rateLimiter.Allow(clientID) {
		return nil, utils.NewRateLimitError(fmt.Sprintf("rate limit exceeded for client: %s", clientID))
	}

	job := RankJob{
		ID:          utils.GenerateRequestID(),
		Profile:     req.Profile,
		Internships: internships,
		Filters:     req.Filters,
		Options:     req.Options,
		ClientID:    clientID,
		ResultChan:  make(chan RankResult, 1),
		Context:     ctx,
		CreatedAt:   time.Now(),
	}

	wp.stats.mu.Lock()
	wp.stats.JobsQueued++
	wp.stats.mu.Unlock()

	select {
	case wp.jobQueue <- job:
		wp.logger.Debug("Job submitted to queue", map[string]interface{}{
			"job_id":    job.ID,
			"client_id": clientID,
			"listings":  len(internships),
		})
	case <-time.After(5 * time.Second):
		return nil, fmt.Errorf("job queue is full, request timed out")
	}

	timeout := wp.config.Workers.Timeout

	select {
	case result := <-job.ResultChan:
		return &result, nil
	case <-time.After(timeout):
		return nil, fmt.Errorf("job processing timed out after %v", timeout)
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// IsRunning returns true if the worker pool is running
func (wp *WorkerPool) IsRunning() bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	return wp.running
}

// GetStats returns current pool statistics
func (wp *WorkerPool) GetStats() PoolStatsData {
	wp.stats.mu.RLock()
	defer wp.stats.mu.RUnlock()

	data := PoolStatsData{
		JobsQueued:     wp.stats.JobsQueued,
		JobsProcessed:  wp.stats.JobsProcessed,
		JobsSuccessful: wp.stats.JobsSuccessful,
		JobsFailed:     wp.stats.JobsFailed,
	}
	if wp.stats.JobsProcessed > 0 {
		data.AverageProcessingTime = wp.stats.TotalProcessingTime / time.Duration(wp.stats.JobsProcessed)
	}
	return data
}

// Start starts the worker goroutine
func (w *Worker) Start() {
	w.logger.Debug("Worker started")

	for {
		select {
		case job := <-w.JobChan:
			w.processJob(job)
		case <-w.QuitChan:
			w.logger.Debug("Worker stopping")
			return
		}
	}
}

// Stop stops the worker
func (w *Worker) Stop() {
	w.QuitChan <- true
}

// processJob processes a single ranking job
func (w *Worker) processJob(job RankJob) {
	startTime := time.Now()
	metrics.RankJobsActive.Inc()
	defer metrics.RankJobsActive.Dec()

	w.logger.Debug("Processing job", map[string]interface{}{
		"job_id":    job.ID,
		"worker_id": w.ID,
	})

	w.Pool.stats.mu.Lock()
	w.Pool.stats.JobsProcessed++
	w.Pool.stats.mu.Unlock()

	result := w.rankJob(job)

	processingTime := time.Since(startTime)
	result.Duration = processingTime
	if result.Response != nil {
		result.Response.ProcessingTime = processingTime
	}

	w.Pool.stats.mu.Lock()
	w.Pool.stats.TotalProcessingTime += processingTime
	if result.Error != nil {
		w.Pool.stats.JobsFailed++
	} else {
		w.Pool.stats.JobsSuccessful++
	}
	w.Pool.stats.mu.Unlock()

	if result.Error != nil {
		metrics.RankJobsFailed.WithLabelValues("match", "RANKING_ERROR").Inc()
	} else {
		metrics.RankJobsCompleted.WithLabelValues("match").Inc()
	}
	metrics.RankJobDuration.WithLabelValues("match").Observe(processingTime.Seconds())

	// Send result back (non-blocking)
	select {
	case job.ResultChan <- result:
		w.logger.Debug("Job completed", map[string]interface{}{
			"job_id":          job.ID,
			"worker_id":       w.ID,
			"processing_time": processingTime.String(),
			"success":         result.Error == nil,
		})
	case <-time.After(100 * time.Millisecond):
		w.logger.Debug("Result channel timeout, client may have disconnected", map[string]interface{}{
			"job_id":    job.ID,
			"worker_id": w.ID,
		})
	}
}

// rankJob runs the full ranking pipeline: filter derivation, predicate
// filtering, scoring, ordering and suggestion generation.
func (w *Worker) rankJob(job RankJob) RankResult {
	result := RankResult{RequestID: job.ID}

	select {
	case <-job.Context.Done():
		result.Error = job.Context.Err()
		return result
	default:
	}

	// Explicit filters win over derived ones
	var filters models.FilterState
	switch {
	case job.Filters != nil:
		filters = *job.Filters
	case job.Profile != nil:
		filters = matching.GenerateSmartFilters(*job.Profile, job.Options)
	default:
		filters = models.NewFilterState()
	}

	// Score before filtering so the sort step can order by the requested
	// key: "ai-recommended" uses the precomputed scores, every other key
	// keeps its own comparator instead of being overridden by score order.
	recommendations := make([]models.Recommendation, len(job.Internships))
	for i, in := range job.Internships {
		recommendations[i] = models.Recommendation{
			Internship: in,
			Score:      matching.ScoreInternship(job.Profile, in, w.rng),
		}
	}
	recommendations = matching.ApplyRecommendationFilters(recommendations, filters)

	result.Response = &models.MatchResponse{
		Success:         true,
		Recommendations: recommendations,
		Filters:         filters,
		Suggestions:     matching.Suggestions(job.Profile, filters, len(recommendations)),
		RequestID:       job.ID,
	}
	return result
}

func clientKey(clientID string) string {
	if clientID == "" {
		return "anonymous"
	}
	return clientID
}
