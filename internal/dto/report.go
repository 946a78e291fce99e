package dto

import (
	"github.com/healthpredictor/health_predictor_app/internal/core/domain"
)

// HealthMetricsRequest is the body of POST /get-tips. Bounds mirror what the
// mobile client can submit; qualitySleep is a 1-5 rating.
type HealthMetricsRequest struct {
	Posture             string  `json:"posture" validate:"required"`
	ScreenTime          float64 `json:"screenTime" validate:"min=0"`
	LastMeal            float64 `json:"lastMeal" validate:"min=0"`
	LastWater           float64 `json:"lastWater" validate:"min=0"`
	LastNightSleep      float64 `json:"lastNightSleep" validate:"min=0"`
	QualitySleep        int     `json:"qualitySleep" validate:"required,min=1,max=5"`
	ScreenTimeBeforeBed float64 `json:"screenTimeBeforeBed" validate:"min=0"`
}

// ToHealthMetrics converts the request into the domain snapshot.
func (r HealthMetricsRequest) ToHealthMetrics() domain.HealthMetrics {
	return domain.HealthMetrics{
		Posture:             r.Posture,
		ScreenTime:          r.ScreenTime,
		LastMeal:            r.LastMeal,
		LastWater:           r.LastWater,
		LastNightSleep:      r.LastNightSleep,
		QualitySleep:        r.QualitySleep,
		ScreenTimeBeforeBed: r.ScreenTimeBeforeBed,
	}
}

// GetTipsResponse is the success body of POST /get-tips.
type GetTipsResponse struct {
	Success      bool                 `json:"success"`
	HealthReport *domain.HealthReport `json:"healthReport"`
}
