package domain

// HealthMetrics is the per-request snapshot of self-reported health data.
// It exists only for the duration of one report-generation request and is
// never persisted.
type HealthMetrics struct {
	Posture             string  `json:"posture"`
	ScreenTime          float64 `json:"screenTime"`          // hours today
	LastMeal            float64 `json:"lastMeal"`            // hours ago
	LastWater           float64 `json:"lastWater"`           // minutes ago
	LastNightSleep      float64 `json:"lastNightSleep"`      // hours
	QualitySleep        int     `json:"qualitySleep"`        // 1-5
	ScreenTimeBeforeBed float64 `json:"screenTimeBeforeBed"` // minutes
}

// AlertLevel grades a single alert category.
type AlertLevel string

const (
	AlertLevelRisk     AlertLevel = "Risk"
	AlertLevelModerate AlertLevel = "Moderate"
	AlertLevelGood     AlertLevel = "Good"
)

// Alert is one graded category in a health report.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
}

// HealthReport is the structured advisory object produced by the external
// completion API. All fields are optional on decode: the upstream is
// untrusted and the parsed object is passed through without field-level
// validation, so consumers must tolerate missing keys.
type HealthReport struct {
	Alerts                  map[string]Alert  `json:"alerts,omitempty"`
	GeneralizedTips         []string          `json:"generalizedTips,omitempty"`
	NearFutureRisks         map[string]string `json:"nearFutureRisks,omitempty"`
	PotentialFutureDiseases []string          `json:"potentialFutureDiseases,omitempty"`
	QuickFixes              []string          `json:"quickFixes,omitempty"`
}
