package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/rueidis"

	"bughunt-platform.com/bughunt-platform/internal/constants"
	repository "bughunt-platform.com/bughunt-platform/internal/repositories"
)

// leaderboardLimit caps the ranking at the top performers.
const leaderboardLimit = 50

type LeaderboardService struct {
	history  *repository.HistoryRepository
	redis    rueidis.Client
	cacheTTL time.Duration
}

// NewLeaderboardService wires the aggregator over the change history log.
// redis may be nil, in which case the snapshot cache is skipped entirely.
func NewLeaderboardService(
	history *repository.HistoryRepository,
	redis rueidis.Client,
	cacheTTL time.Duration,
) *LeaderboardService {
	return &LeaderboardService{
		history:  history,
		redis:    redis,
		cacheTTL: cacheTTL,
	}
}

// GetLeaderboard returns the ranked completion counts for the window.
// Unknown timeRange values fall back to all-time, matching the query
// surface the dashboard has always exposed. An empty result is a valid
// empty slice, never an error.
func (s *LeaderboardService) GetLeaderboard(
	ctx context.Context,
	timeRange constants.TimeRange,
	role constants.Role,
) ([]repository.LeaderboardRow, error) {
	cacheKey := fmt.Sprintf("leaderboard:%s:%s", timeRange, role)

	if cached, ok := s.cacheGet(ctx, cacheKey); ok {
		return cached, nil
	}

	rows, err := s.history.Leaderboard(ctx, windowStart(timeRange), role, leaderboardLimit)
	if err != nil {
		return nil, err
	}

	// A role filter implies every row has that role even when the join
	// produced no value to scan.
	if role != "" {
		for i := range rows {
			if rows[i].Role == "" {
				rows[i].Role = string(role)
			}
		}
	}

	s.cacheSet(ctx, cacheKey, rows)
	return rows, nil
}

// windowStart maps a time range onto a lower bound for history timestamps.
// all-time and unrecognized values apply no bound.
func windowStart(timeRange constants.TimeRange) *time.Time {
	var days int
	switch timeRange {
	case constants.TimeRangeWeekly:
		days = 7
	case constants.TimeRangeMonthly:
		days = 30
	case constants.TimeRangeQuarterly:
		days = 90
	default:
		return nil
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	return &since
}

func (s *LeaderboardService) cacheGet(ctx context.Context, key string) ([]repository.LeaderboardRow, bool) {
	if s.redis == nil {
		return nil, false
	}

	resp := s.redis.Do(ctx, s.redis.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("leaderboard cache read failed: %v", err)
		}
		return nil, false
	}

	payload, err := resp.ToString()
	if err != nil {
		return nil, false
	}

	var rows []repository.LeaderboardRow
	if err := json.Unmarshal([]byte(payload), &rows); err != nil {
		log.Printf("leaderboard cache entry corrupt, ignoring: %v", err)
		return nil, false
	}

	return rows, true
}

func (s *LeaderboardService) cacheSet(ctx context.Context, key string, rows []repository.LeaderboardRow) {
	if s.redis == nil || s.cacheTTL <= 0 {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}

	cmd := s.redis.B().Set().Key(key).Value(string(payload)).
		Ex(s.cacheTTL).Build()
	if err := s.redis.Do(ctx, cmd).Error(); err != nil {
		log.Printf("leaderboard cache write failed: %v", err)
	}
}
