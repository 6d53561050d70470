package workers

import (
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"saksham-engine/internal/config"
	"saksham-engine/internal/logging"
)

// ClientLimiter represents rate limiting state for a single client
type ClientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
	requests int64
	rejected int64
	mu       sync.RWMutex
}

// RateLimiter manages per-client token buckets for ranking requests
type RateLimiter struct {
	config         *config.Config
	clientLimiters map[string]*ClientLimiter
	mu             sync.RWMutex
	logger         logging.Logger
	cleanupTicker  *time.Ticker
	stopCleanup    chan bool
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(cfg *config.Config) *RateLimiter {
	rl := &RateLimiter{
		config:         cfg,
		clientLimiters: make(map[string]*ClientLimiter),
		logger:         logging.GetGlobalLogger().WithField("component", "rate_limiter"),
		cleanupTicker:  time.NewTicker(5 * time.Minute),
		stopCleanup:    make(chan bool),
	}

	go rl.cleanupRoutine()

	return rl
}

// Allow checks if a request from the given client is allowed
func (rl *RateLimiter) Allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	clientID = strings.ToLower(clientID)
	limiter := rl.getClientLimiter(clientID)

	allowed := limiter.limiter.Allow()
	limiter.mu.Lock()
	limiter.lastSeen = time.Now()
	if allowed {
		limiter.requests++
	} else {
		limiter.rejected++
	}
	limiter.mu.Unlock()

	if !allowed {
		rl.logger.Debug("Request rejected by rate limiter", map[string]interface{}{
			"client_id": clientID,
		})
	}

	return allowed
}

// getClientLimiter gets or creates a rate limiter for a client
func (rl *RateLimiter) getClientLimiter(clientID string) *ClientLimiter {
	if limiter, exists := rl.clientLimiters[clientID]; exists {
		return limiter
	}

	// Rate limit is configured as requests per minute
	rps := rate.Limit(float64(rl.config.Workers.RateLimit) / 60.0)
	burst := 5

	limiter := &ClientLimiter{
		limiter:  rate.NewLimiter(rps, burst),
		lastSeen: time.Now(),
	}

	rl.clientLimiters[clientID] = limiter

	rl.logger.Debug("Created new client rate limiter", map[string]interface{}{
		"client_id": clientID,
		"rate":      float64(rps),
		"burst":     burst,
	})

	return limiter
}

// GetClientStats returns statistics for a specific client
func (rl *RateLimiter) GetClientStats(clientID string) map[string]interface{} {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	clientID = strings.ToLower(clientID)
	stats := make(map[string]interface{})

	if limiter, exists := rl.clientLimiters[clientID]; exists {
		limiter.mu.RLock()
		stats["requests"] = limiter.requests
		stats["rejected"] = limiter.rejected
		stats["last_seen"] = limiter.lastSeen
		stats["limit"] = float64(limiter.limiter.Limit())
		stats["burst"] = limiter.limiter.Burst()
		limiter.mu.RUnlock()
	}

	return stats
}

// GetAllStats returns statistics for all known clients
func (rl *RateLimiter) GetAllStats() map[string]map[string]interface{} {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	allStats := make(map[string]map[string]interface{})
	for clientID, limiter := range rl.clientLimiters {
		limiter.mu.RLock()
		allStats[clientID] = map[string]interface{}{
			"requests":  limiter.requests,
			"rejected":  limiter.rejected,
			"last_seen": limiter.lastSeen,
			"limit":     float64(limiter.limiter.Limit()),
			"burst":     limiter.limiter.Burst(),
		}
		limiter.mu.RUnlock()
	}

	return allStats
}

// cleanupRoutine periodically cleans up old unused limiters
func (rl *RateLimiter) cleanupRoutine() {
	for {
		select {
		case <-rl.cleanupTicker.C:
			rl.cleanup()
		case <-rl.stopCleanup:
			rl.cleanupTicker.Stop()
			return
		}
	}
}

// cleanup removes limiters that have not been used recently
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-10 * time.Minute)
	removedCount := 0

	for clientID, limiter := range rl.clientLimiters {
		limiter.mu.RLock()
		lastSeen := limiter.lastSeen
		limiter.mu.RUnlock()

		if lastSeen.Before(cutoff) {
			delete(rl.clientLimiters, clientID)
			removedCount++
		}
	}

	if removedCount > 0 {
		rl.logger.Info("Cleaned up unused rate limiters", map[string]interface{}{
			"removed_count": removedCount,
		})
	}
}

// Stop stops the rate limiter and cleanup routine
func (rl *RateLimiter) Stop() {
	rl.stopCleanup <- true
}
