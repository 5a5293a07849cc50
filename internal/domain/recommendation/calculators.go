package recommendation

import (
	"math"
	"strings"

	"jobboard/internal/domain/fields"
	"jobboard/internal/domain/job"
)

const (
	neutralExperience = 0.5
	neutralLocation   = 0.5
	locationMismatch  = 0.3
	neutralJobType    = 0.7
	jobTypeMismatch   = 0.5
	otherLevel        = 0.8
)

// SkillMatch returns the share of requirements covered by the candidate's
// skills on a 0-100 scale.
//
// A requirement matches a skill when the requirement text contains the skill,
// or the skill contains the requirement's first word. One requirement may match
// several skills, so the raw ratio can exceed 1 and is capped. Blank skills and
// blank requirements match everything.
func SkillMatch(skills, requirements []string) float64 {
	if len(skills) == 0 || len(requirements) == 0 {
		return 0
	}

	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}

	matches := 0
	for _, req := range requirements {
		reqLower := strings.ToLower(req)
		firstWord := ""
		if words := strings.Fields(reqLower); len(words) > 0 {
			firstWord = words[0]
		}
		for _, skill := range lowered {
			if strings.Contains(reqLower, skill) || strings.Contains(skill, firstWord) {
				matches++
			}
		}
	}

	return math.Min(float64(matches)/float64(len(requirements))*100, 100)
}

// ExperienceLevelMatch scores how well the number of recorded positions fits
// the posting's level. With no history it returns a neutral 0.5.
func ExperienceLevelMatch(experience []fields.Position, level job.ExperienceLevel) float64 {
	years := len(experience)
	if years == 0 {
		return neutralExperience
	}

	switch level {
	case job.LevelEntry:
		if years <= 2 {
			return 1
		}
		return 0.7
	case job.LevelMid:
		if years >= 2 && years <= 5 {
			return 1
		}
		return 0.6
	case job.LevelSenior:
		if years >= 4 {
			return 1
		}
		return 0.4
	default:
		return otherLevel
	}
}

// LocationMatch scores the posting's location against the candidate's city and
// remote preference. preferences doubles as the remote signal. The city is the
// text before the first comma, so an empty city matches any posting.
func LocationMatch(location string, preferences []string, jobLocation string) float64 {
	location = strings.TrimSpace(location)
	if location == "" && len(preferences) == 0 {
		return neutralLocation
	}

	jobLower := strings.ToLower(jobLocation)
	if containsFold(preferences, "remote") && strings.Contains(jobLower, "remote") {
		return 1
	}

	if location != "" {
		city, _, _ := strings.Cut(location, ",")
		city = strings.ToLower(strings.TrimSpace(city))
		if strings.Contains(jobLower, city) {
			return 1
		}
	}

	return locationMismatch
}

// JobTypeMatch returns 1 when the posting's type is among the preferences, 0.5
// otherwise, and 0.7 when no preference is recorded.
func JobTypeMatch(preferences []string, jobType job.Type) float64 {
	if len(preferences) == 0 {
		return neutralJobType
	}
	if containsFold(preferences, string(jobType)) {
		return 1
	}
	return jobTypeMismatch
}

func containsFold(list []string, want string) bool {
	want = strings.TrimSpace(want)
	if want == "" {
		return false
	}
	for _, it := range list {
		if strings.EqualFold(strings.TrimSpace(it), want) {
			return true
		}
	}
	return false
}
