package seeder

import (
	"context"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type CandidatesSeeder struct{}

func (CandidatesSeeder) Name() string { return "candidates" }

// Run stores demo profiles in the shapes older clients wrote: suffixed keys,
// comma-separated strings and line-based experience sit next to canonical lists.
func (CandidatesSeeder) Run(ctx context.Context, db database.DB) error {
	return insertAttributes(ctx, db, "candidates", candidateFixtures())
}

func candidateFixtures() map[uuid.UUID]map[string]any {
	return map[uuid.UUID]map[string]any{
		seedID("candidate", "ayu"): {
			"fullName":          "Ayu Lestari",
			"email":             "ayu@example.com",
			"location":          "Jakarta, ID",
			"skills":            []string{"Go", "PostgreSQL", "Docker"},
			"preferredJobTypes": []string{"full-time", "remote"},
			"experience": []map[string]any{
				{"company": "Tokoku", "position": "Backend Engineer", "startDate": "2021-02", "current": true},
				{"company": "Kiriman", "position": "Software Engineer", "startDate": "2019-01", "endDate": "2021-01"},
				{"company": "Lapak", "position": "Intern", "startDate": "2018-06", "endDate": "2018-12"},
			},
		},
		seedID("candidate", "budi"): {
			"fullName_c":            "Budi Santoso",
			"email_c":               "budi@example.com",
			"location_c":            "Bandung, ID",
			"skills_c":              "JavaScript, React, TypeScript",
			"preferred_job_types_c": "contract, part-time",
			"experience_c":          "Frontend Developer at Warung\nUI Engineer at Pasar",
		},
		seedID("candidate", "citra"): {
			"fullName": "Citra Dewi",
			"email":    "citra@example.com",
			"skills":   "Python",
		},
	}
}
