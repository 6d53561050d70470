package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saksham-engine/internal/config"
	"saksham-engine/pkg/models"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = 2
	cfg.Workers.QueueSize = 10
	cfg.Workers.RateLimit = 600
	cfg.Workers.Timeout = 5 * time.Second
	return cfg
}

func testProfile() *models.Profile {
	return &models.Profile{
		Skills:     []string{"python", "sql"},
		Sectors:    []string{"technology"},
		Location:   models.Location{City: "Pune"},
		MinStipend: 5000,
	}
}

func testInternships() []models.Internship {
	return []models.Internship{
		{
			ID:             "in-1",
			Title:          "Data Intern",
			Company:        "Acme",
			Location:       models.Location{City: "Pune"},
			Stipend:        "₹12,000/month",
			SectorTags:     []string{"technology"},
			RequiredSkills: []string{"python", "sql"},
		},
		{
			ID:             "in-2",
			Title:          "Marketing Intern",
			Company:        "Beta",
			Location:       models.Location{City: "Delhi"},
			Stipend:        "6000",
			SectorTags:     []string{"marketing"},
			RequiredSkills: []string{"copywriting"},
		},
	}
}

func startTestPool(t *testing.T) *PoolManager {
	t.Helper()
	pm := NewPoolManager(testConfig())
	require.NoError(t, pm.Initialize())
	t.Cleanup(func() { _ = pm.Shutdown() })
	return pm
}

func TestPoolRanksAndOrders(t *testing.T) {
	pm := startTestPool(t)

	req := &models.MatchRequest{Profile: testProfile()}
	result, err := pm.SubmitJob(context.Background(), req, testInternships())
	require.NoError(t, err)
	require.NoError(t, result.Error)
	require.NotNil(t, result.Response)

	resp := result.Response
	assert.True(t, resp.Success)
	assert.Equal(t, models.SortAIRecommended, resp.Filters.SortBy)

	require.NotEmpty(t, resp.Recommendations)
	for i := 1; i < len(resp.Recommendations); i++ {
		assert.GreaterOrEqual(t, resp.Recommendations[i-1].Score, resp.Recommendations[i].Score)
	}
	// Full skill and sector overlap puts the Pune listing first
	assert.Equal(t, "in-1", resp.Recommendations[0].Internship.ID)
}

func TestPoolExplicitFiltersSkipDerivation(t *testing.T) {
	pm := startTestPool(t)

	filters := models.NewFilterState()
	filters.Sector = "marketing"

	req := &models.MatchRequest{
		Profile: testProfile(),
		Filters: &filters,
	}
	result, err := pm.SubmitJob(context.Background(), req, testInternships())
	require.NoError(t, err)
	require.NoError(t, result.Error)

	resp := result.Response
	assert.Equal(t, filters, resp.Filters)
	require.Len(t, resp.Recommendations, 1)
	assert.Equal(t, "in-2", resp.Recommendations[0].Internship.ID)
}

func TestPoolHonorsRequestedSortKey(t *testing.T) {
	pm := startTestPool(t)

	filters := models.NewFilterState()
	filters.SortBy = models.SortStipendLow

	req := &models.MatchRequest{
		Profile: testProfile(),
		Filters: &filters,
	}
	result, err := pm.SubmitJob(context.Background(), req, testInternships())
	require.NoError(t, err)
	require.NoError(t, result.Error)

	resp := result.Response
	require.Len(t, resp.Recommendations, 2)
	// Stipend order wins over score order when the caller asks for it
	assert.Equal(t, "in-2", resp.Recommendations[0].Internship.ID)
	assert.Equal(t, "in-1", resp.Recommendations[1].Internship.ID)
}

func TestPoolWithoutProfileUsesFallbackScores(t *testing.T) {
	pm := startTestPool(t)

	result, err := pm.SubmitJob(context.Background(), &models.MatchRequest{}, testInternships())
	require.NoError(t, err)
	require.NoError(t, result.Error)

	resp := result.Response
	require.Len(t, resp.Recommendations, 2)
	for _, rec := range resp.Recommendations {
		assert.GreaterOrEqual(t, rec.Score, 60)
		assert.Less(t, rec.Score, 90)
	}
}

func TestPoolSuggestionsOnSparseResults(t *testing.T) {
	pm := startTestPool(t)

	profile := testProfile()
	profile.Skills = []string{"python", "sql", "excel", "tableau"}
	profile.MinStipend = 15000

	req := &models.MatchRequest{Profile: profile}
	result, err := pm.SubmitJob(context.Background(), req, testInternships())
	require.NoError(t, err)
	require.NoError(t, result.Error)

	resp := result.Response
	assert.Less(t, len(resp.Recommendations), 5)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestPoolNotRunning(t *testing.T) {
	pm := NewPoolManager(testConfig())

	_, err := pm.SubmitJob(context.Background(), &models.MatchRequest{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not initialized")
}

func TestPoolStats(t *testing.T) {
	pm := startTestPool(t)

	_, err := pm.SubmitJob(context.Background(), &models.MatchRequest{Profile: testProfile()}, testInternships())
	require.NoError(t, err)

	stats, err := pm.GetStats()
	require.NoError(t, err)
	assert.True(t, stats.Initialized)
	assert.Equal(t, 2, stats.WorkerCount)
	assert.Equal(t, int64(1), stats.PoolStats.JobsQueued)
	assert.Equal(t, int64(1), stats.PoolStats.JobsProcessed)
	assert.Equal(t, int64(1), stats.PoolStats.JobsSuccessful)
}

func TestRateLimiterRejectsBurst(t *testing.T) {
	cfg := testConfig()
	cfg.Workers.RateLimit = 6 // 0.1 rps with a burst of 5

	rl := NewRateLimiter(cfg)
	defer rl.Stop()

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("client-a"), "request %d should be allowed", i+1)
	}
	assert.False(t, rl.Allow("client-a"))

	// Other clients have their own buckets
	assert.True(t, rl.Allow("client-b"))

	stats := rl.GetClientStats("client-a")
	assert.Equal(t, int64(5), stats["requests"])
	assert.Equal(t, int64(1), stats["rejected"])
}
