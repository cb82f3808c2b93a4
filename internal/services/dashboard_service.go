package services

import (
	"context"

	"github.com/mkendrick/jobtrack/internal/dtos"
	"github.com/mkendrick/jobtrack/internal/models"
	"gorm.io/gorm"
)

// DashboardService computes the landing-view aggregates. Counts are
// recomputed on every call; nothing is cached.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type tagCount struct {
	Name  string
	Count int64
}

// Summarize returns the total application count and the per-tag
// application counts. The LEFT JOIN keeps tags with no linked
// applications in the result at count zero, so an unused tag never
// disappears from the dashboard.
func (s *DashboardService) Summarize(ctx context.Context) (*dtos.DashboardSummary, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.JobApplication{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var counts []tagCount
	err := s.db.WithContext(ctx).Model(&models.Tag{}).
		Select("tags.name AS name, COUNT(application_tags.tag_id) AS count").
		Joins("LEFT JOIN application_tags ON application_tags.tag_id = tags.id").
		Group("tags.id, tags.name").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	byTag := make(map[string]int64, len(counts))
	for _, c := range counts {
		byTag[c.Name] = c.Count
	}
	return &dtos.DashboardSummary{
		TotalApplications: total,
		ApplicationsByTag: byTag,
	}, nil
}
