package fields

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Field is the canonical name of an attribute stored on a candidate or job record.
type Field string

const (
	FullName          Field = "fullName"
	Email             Field = "email"
	Phone             Field = "phone"
	Location          Field = "location"
	Skills            Field = "skills"
	Experience        Field = "experience"
	Education         Field = "education"
	PreferredJobTypes Field = "preferredJobTypes"
	ProfileSummary    Field = "profileSummary"
	ResumeURL         Field = "resumeUrl"

	Title            Field = "title"
	Company          Field = "company"
	Description      Field = "description"
	Requirements     Field = "requirements"
	Responsibilities Field = "responsibilities"
	Benefits         Field = "benefits"
	ExperienceLevel  Field = "experienceLevel"
	JobType          Field = "jobType"
	SalaryMin        Field = "salaryMin"
	SalaryMax        Field = "salaryMax"
	PostedDate       Field = "postedDate"
	ApplicationCount Field = "applicationCount"
)

// aliases lists, per canonical field, the stored keys tried in priority order.
// Records written by the hosted backend carry a "_c" suffix; older rows and
// API payloads use the plain camelCase or snake_case spelling.
var aliases = map[Field][]string{
	FullName:          {"fullName", "fullName_c", "full_name", "name"},
	Email:             {"email", "email_c"},
	Phone:             {"phone", "phone_c"},
	Location:          {"location", "location_c"},
	Skills:            {"skills", "skills_c"},
	Experience:        {"experience", "experience_c"},
	Education:         {"education", "education_c"},
	PreferredJobTypes: {"preferredJobTypes", "preferredJobTypes_c", "preferred_job_types_c", "preferred_job_types"},
	ProfileSummary:    {"profileSummary", "profileSummary_c", "profile_summary"},
	ResumeURL:         {"resumeUrl", "resumeUrl_c", "resume_url"},

	Title:            {"title", "title_c"},
	Company:          {"company", "company_c", "company_name"},
	Description:      {"description", "description_c"},
	Requirements:     {"requirements", "requirements_c"},
	Responsibilities: {"responsibilities", "responsibilities_c"},
	Benefits:         {"benefits", "benefits_c"},
	ExperienceLevel:  {"experienceLevel", "experienceLevel_c", "experience_level_c", "experience_level"},
	JobType:          {"jobType", "jobType_c", "job_type_c", "job_type"},
	SalaryMin:        {"salaryMin", "salaryMin_c", "salary_min"},
	SalaryMax:        {"salaryMax", "salaryMax_c", "salary_max"},
	PostedDate:       {"postedDate", "postedDate_c", "posted_date"},
	ApplicationCount: {"applicationCount", "applicationCount_c", "application_count"},
}

// Aliases returns the stored keys for f in lookup order.
func Aliases(f Field) []string {
	keys, ok := aliases[f]
	if !ok {
		return []string{string(f)}
	}
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Record is a loosely typed stored row, as decoded from JSON.
type Record map[string]any

// Lookup returns the first non-nil value stored under any alias of f.
func (r Record) Lookup(f Field) any {
	if r == nil {
		return nil
	}
	for _, k := range Aliases(f) {
		if v, ok := r[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// Has reports whether any alias of f is present, even when its value is null.
func (r Record) Has(f Field) bool {
	for _, k := range Aliases(f) {
		if _, ok := r[k]; ok {
			return true
		}
	}
	return false
}

func (r Record) String(f Field) string {
	switch v := r.Lookup(f).(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case fmt.Stringer:
		return strings.TrimSpace(v.String())
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// Int reads a numeric field. JSON numbers decode as float64; numeric strings are accepted.
func (r Record) Int(f Field) (int, bool) {
	switch v := r.Lookup(f).(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func (r Record) Time(f Field) (time.Time, bool) {
	switch v := r.Lookup(f).(type) {
	case time.Time:
		return v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}

// Set stores v under the canonical key of f, dropping any alias spellings so
// later lookups cannot resolve to a stale value.
func (r Record) Set(f Field, v any) {
	if r == nil {
		return
	}
	for _, k := range Aliases(f) {
		delete(r, k)
	}
	r[string(f)] = v
}
