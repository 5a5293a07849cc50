package recommendation

import "time"

// Weights are the share of each sub-score in the total. They are expected to
// sum to 1.
type Weights struct {
	Skills     float64 `validate:"gte=0,lte=1"`
	Experience float64 `validate:"gte=0,lte=1"`
	Location   float64 `validate:"gte=0,lte=1"`
	JobType    float64 `validate:"gte=0,lte=1"`
}

// ReasonThresholds are the breakdown values (0-100) at which a clause is added
// to the recommendation reason.
type ReasonThresholds struct {
	Skill        int `validate:"gte=0,lte=100"`
	Experience   int `validate:"gte=0,lte=100"`
	Location     int `validate:"gte=0,lte=100"`
	JobType      int `validate:"gte=0,lte=100"`
	PartialSkill int `validate:"gte=0,lte=100"`
}

type Config struct {
	Weights Weights
	Reasons ReasonThresholds

	// MinScore is the inclusion threshold; lower scoring jobs are never returned.
	MinScore int `validate:"gte=0,lte=100"`
	// NotifyScore is the score at which a job_match notification is requested.
	NotifyScore  int           `validate:"gte=0,lte=100"`
	DefaultLimit int           `validate:"gte=1"`
	DedupWindow  time.Duration `validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Skills:     0.40,
			Experience: 0.25,
			Location:   0.20,
			JobType:    0.15,
		},
		Reasons: ReasonThresholds{
			Skill:        70,
			Experience:   80,
			Location:     80,
			JobType:      80,
			PartialSkill: 50,
		},
		MinScore:     30,
		NotifyScore:  85,
		DefaultLimit: 6,
		DedupWindow:  24 * time.Hour,
	}
}
