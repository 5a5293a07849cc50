package recommendation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"jobboard/internal/domain/candidate"
	"jobboard/internal/domain/job"
)

// Breakdown holds the four sub-scores, each on a 0-100 scale.
type Breakdown struct {
	SkillMatch      int `json:"skillMatch"`
	ExperienceMatch int `json:"experienceMatch"`
	LocationMatch   int `json:"locationMatch"`
	JobTypeMatch    int `json:"jobTypeMatch"`
}

type Result struct {
	TotalScore int
	Breakdown  Breakdown
}

// ScoredJob is a posting ranked for one candidate. It is built per request and
// never stored.
type ScoredJob struct {
	Job        job.Posting
	TotalScore int
	Breakdown  Breakdown
	Reason     string
}

type Engine struct {
	cfg Config
}

func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

func (e *Engine) Config() Config {
	return e.cfg
}

// Score computes the weighted match between c and j. It depends only on its
// inputs and the engine config.
func (e *Engine) Score(c candidate.Profile, j job.Posting) Result {
	skill := SkillMatch(c.Skills, j.Requirements)
	experience := ExperienceLevelMatch(c.Experience, j.ExperienceLevel)
	location := LocationMatch(c.Location, c.PreferredJobTypes, j.Location)
	jobType := JobTypeMatch(c.PreferredJobTypes, j.JobType)

	w := e.cfg.Weights
	total := (skill/100*w.Skills +
		experience*w.Experience +
		location*w.Location +
		jobType*w.JobType) * 100

	return Result{
		TotalScore: roundScore(total),
		Breakdown: Breakdown{
			SkillMatch:      roundScore(skill),
			ExperienceMatch: roundScore(experience * 100),
			LocationMatch:   roundScore(location * 100),
			JobTypeMatch:    roundScore(jobType * 100),
		},
	}
}

// Reason explains a breakdown. Qualifying clauses are listed in a fixed order;
// when none qualifies a fallback phrase is returned, so the result is never empty.
func (e *Engine) Reason(b Breakdown) string {
	t := e.cfg.Reasons
	reasons := make([]string, 0, 4)

	if b.SkillMatch >= t.Skill {
		reasons = append(reasons, fmt.Sprintf("%d%% skill match", b.SkillMatch))
	}
	if b.ExperienceMatch >= t.Experience {
		reasons = append(reasons, "experience level fit")
	}
	if b.LocationMatch >= t.Location {
		reasons = append(reasons, "location preference match")
	}
	if b.JobTypeMatch >= t.JobType {
		reasons = append(reasons, "job type preference")
	}

	if len(reasons) == 0 {
		if b.SkillMatch >= t.PartialSkill {
			return "partial skill match"
		}
		return "career growth opportunity"
	}
	return strings.Join(reasons, ", ")
}

func (e *Engine) ScoreJob(c candidate.Profile, j job.Posting) ScoredJob {
	res := e.Score(c, j)
	return ScoredJob{
		Job:        j,
		TotalScore: res.TotalScore,
		Breakdown:  res.Breakdown,
		Reason:     e.Reason(res.Breakdown),
	}
}

// Rank scores every job, drops those under MinScore and returns at most limit
// entries, best first. Equal scores keep their input order. limit <= 0 uses
// DefaultLimit.
func (e *Engine) Rank(c candidate.Profile, jobs []job.Posting, limit int) []ScoredJob {
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	out := make([]ScoredJob, 0, len(jobs))
	for _, j := range jobs {
		sj := e.ScoreJob(c, j)
		if sj.TotalScore < e.cfg.MinScore {
			continue
		}
		out = append(out, sj)
	}

	sort.SliceStable(out, func(i, k int) bool {
		return out[i].TotalScore > out[k].TotalScore
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// ShouldNotify reports whether a ranked job scores high enough for a job_match notification.
func (e *Engine) ShouldNotify(sj ScoredJob) bool {
	return sj.TotalScore >= e.cfg.NotifyScore
}

// IsProfileComplete reports whether a profile carries enough signal for
// recommendations: at least one skill plus experience, preferences or a location.
func IsProfileComplete(p candidate.Profile) bool {
	if len(p.Skills) == 0 {
		return false
	}
	return len(p.Experience) > 0 || len(p.PreferredJobTypes) > 0 || p.HasLocation()
}

// roundScore rounds half up and clamps to [0, 100].
func roundScore(v float64) int {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 100 {
		return 100
	}
	return clampInt(int(math.Floor(v+0.5)), 0, 100)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
