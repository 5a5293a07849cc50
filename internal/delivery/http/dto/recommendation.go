package dto

import "jobboard/internal/domain/recommendation"

type RecommendationResponse struct {
	Job        JobResponse              `json:"job"`
	TotalScore int                      `json:"totalScore"`
	Breakdown  recommendation.Breakdown `json:"breakdown"`
	Reason     string                   `json:"reason"`
}

type RecommendationStatusResponse struct {
	ProfileComplete bool `json:"profileComplete"`
}

func NewRecommendationResponses(in []recommendation.ScoredJob) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(in))
	for _, sj := range in {
		out = append(out, RecommendationResponse{
			Job:        NewJobResponse(sj.Job),
			TotalScore: sj.TotalScore,
			Breakdown:  sj.Breakdown,
			Reason:     sj.Reason,
		})
	}
	return out
}
