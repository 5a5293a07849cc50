package job

import (
	"strings"
	"time"

	"jobboard/internal/domain/fields"

	"github.com/google/uuid"
)

type ExperienceLevel string

const (
	LevelEntry  ExperienceLevel = "entry"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelOther  ExperienceLevel = "other"
)

type Type string

const (
	TypeFullTime   Type = "full-time"
	TypePartTime   Type = "part-time"
	TypeContract   Type = "contract"
	TypeFreelance  Type = "freelance"
	TypeInternship Type = "internship"
	TypeOther      Type = "other"
)

// Known reports whether t is one of the listed posting types.
func (t Type) Known() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeFreelance, TypeInternship:
		return true
	}
	return false
}

func (l ExperienceLevel) Known() bool {
	switch l {
	case LevelEntry, LevelMid, LevelSenior:
		return true
	}
	return false
}

// NormalizeType maps free text onto a known Type, or TypeOther.
func NormalizeType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if t.Known() {
		return t
	}
	return TypeOther
}

func NormalizeLevel(s string) ExperienceLevel {
	l := ExperienceLevel(strings.ToLower(strings.TrimSpace(s)))
	if l.Known() {
		return l
	}
	return LevelOther
}

type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Posting is the canonical view of an open position.
type Posting struct {
	ID               uuid.UUID
	Title            string
	Company          string
	Description      string
	Location         string
	JobType          Type
	ExperienceLevel  ExperienceLevel
	Requirements     []string
	Responsibilities []string
	Benefits         []string
	Salary           SalaryRange
	ApplicationCount int
	PostedAt         *time.Time
}

// FromRecord builds a Posting from a stored record. Unknown enum values are
// kept verbatim; scoring treats them as "other".
func FromRecord(id uuid.UUID, r fields.Record) Posting {
	p := Posting{
		ID:               id,
		Title:            r.String(fields.Title),
		Company:          r.String(fields.Company),
		Description:      r.String(fields.Description),
		Location:         r.String(fields.Location),
		JobType:          Type(strings.ToLower(r.String(fields.JobType))),
		ExperienceLevel:  ExperienceLevel(strings.ToLower(r.String(fields.ExperienceLevel))),
		Requirements:     fields.ParseRequirements(r.Lookup(fields.Requirements)),
		Responsibilities: fields.ParseRequirements(r.Lookup(fields.Responsibilities)),
		Benefits:         fields.ParseRequirements(r.Lookup(fields.Benefits)),
	}
	if v, ok := r.Int(fields.SalaryMin); ok {
		p.Salary.Min = v
	}
	if v, ok := r.Int(fields.SalaryMax); ok {
		p.Salary.Max = v
	}
	if v, ok := r.Int(fields.ApplicationCount); ok {
		p.ApplicationCount = v
	}
	if t, ok := r.Time(fields.PostedDate); ok {
		p.PostedAt = &t
	}
	return p
}

func (p Posting) Record() fields.Record {
	r := fields.Record{}
	r.Set(fields.Title, p.Title)
	r.Set(fields.Company, p.Company)
	r.Set(fields.Description, p.Description)
	r.Set(fields.Location, p.Location)
	r.Set(fields.JobType, string(p.JobType))
	r.Set(fields.ExperienceLevel, string(p.ExperienceLevel))
	r.Set(fields.Requirements, nonNil(p.Requirements))
	r.Set(fields.Responsibilities, nonNil(p.Responsibilities))
	r.Set(fields.Benefits, nonNil(p.Benefits))
	r.Set(fields.SalaryMin, p.Salary.Min)
	r.Set(fields.SalaryMax, p.Salary.Max)
	r.Set(fields.ApplicationCount, p.ApplicationCount)
	if p.PostedAt != nil {
		r.Set(fields.PostedDate, p.PostedAt.UTC().Format(time.RFC3339))
	}
	return r
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
