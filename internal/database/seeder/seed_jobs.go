package seeder

import (
	"context"
	"time"

	"jobboard/internal/database"

	"github.com/google/uuid"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	return insertAttributes(ctx, db, "jobs", jobFixtures(time.Now().UTC()))
}

func jobFixtures(now time.Time) map[uuid.UUID]map[string]any {
	day := func(n int) string { return now.AddDate(0, 0, -n).Format(time.RFC3339) }

	return map[uuid.UUID]map[string]any{
		seedID("job", "backend-go"): {
			"title":           "Backend Engineer (Go)",
			"company":         "Jobboard Labs",
			"location":        "Jakarta, ID",
			"jobType":         "full-time",
			"experienceLevel": "mid",
			"salaryMin":       18000000,
			"salaryMax":       28000000,
			"description":     "Build and maintain Go services backed by PostgreSQL.",
			"requirements":    []string{"Go in production", "PostgreSQL schema design", "Docker based delivery"},
			"benefits":        []string{"Remote Fridays", "Learning budget"},
			"postedDate":      day(2),
		},
		seedID("job", "devops-remote"): {
			"title_c":            "DevOps Engineer",
			"company_c":          "CloudKita",
			"location_c":         "Remote",
			"job_type_c":         "Full-Time",
			"experience_level_c": "Senior",
			"description_c":      "Operate CI/CD and Kubernetes for production workloads.",
			"requirements_c":     "Kubernetes operations\nDocker image hardening\nGo or Python scripting",
			"postedDate_c":       day(5),
		},
		seedID("job", "frontend-contract"): {
			"title":           "Frontend Engineer",
			"company":         "Pasar Digital",
			"location":        "Bandung, ID",
			"jobType":         "contract",
			"experienceLevel": "entry",
			"description":     "Ship React features for a marketplace dashboard.",
			"requirements":    "React or Vue knowledge\nJavaScript fundamentals\nTeam player",
			"postedDate":      day(1),
		},
		seedID("job", "data-engineer"): {
			"title":           "Data Engineer",
			"company":         "InsightWorks",
			"location":        "Surabaya, ID",
			"jobType":         "full-time",
			"experienceLevel": "senior",
			"description":     "Build data pipelines and tune PostgreSQL for analytics.",
			"requirements":    []string{"Python pipelines", "SQL performance tuning"},
			"postedDate":      day(10),
		},
	}
}
