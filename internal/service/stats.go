// internal/service/stats.go
package service

import "absence-tracker/internal/models"

// Summary aggregates the current projection for the dashboard cards.
type Summary struct {
	TotalRecords int            `json:"total_records"`
	LatestWeek   *int           `json:"latest_week,omitempty"`
	ByWeek       map[int]int    `json:"by_week"`
	ByCategory   map[string]int `json:"by_category"`
	Unjustified  int            `json:"unjustified"`
}

// StatsService computes read-only aggregates over the owned record set.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

func (s *StatsService) Summarize(set *models.RecordSet) Summary {
	summary := Summary{
		TotalRecords: set.Len(),
		ByWeek:       make(map[int]int),
		ByCategory:   make(map[string]int),
	}

	for i := range set.Records {
		rec := &set.Records[i]
		if rec.Week != nil {
			summary.ByWeek[*rec.Week]++
			if summary.LatestWeek == nil || *rec.Week > *summary.LatestWeek {
				week := *rec.Week
				summary.LatestWeek = &week
			}
		}
		if rec.Category != nil {
			summary.ByCategory[*rec.Category]++
		}
		if rec.Justification == nil {
			summary.Unjustified++
		}
	}
	return summary
}
