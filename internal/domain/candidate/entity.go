package candidate

import (
	"strings"

	"jobboard/internal/domain/fields"

	"github.com/google/uuid"
)

// Profile is the canonical view of a job seeker. All multi-valued attributes
// are already normalized to ordered lists.
type Profile struct {
	ID                uuid.UUID
	FullName          string
	Email             string
	Phone             string
	Location          string
	Skills            []string
	Experience        []fields.Position
	PreferredJobTypes []string
	ProfileSummary    string
	ResumeURL         string
}

// FromRecord builds a Profile from a stored record, resolving field aliases
// and string-or-list shapes.
func FromRecord(id uuid.UUID, r fields.Record) Profile {
	return Profile{
		ID:                id,
		FullName:          r.String(fields.FullName),
		Email:             r.String(fields.Email),
		Phone:             r.String(fields.Phone),
		Location:          r.String(fields.Location),
		Skills:            fields.ParseSkills(r.Lookup(fields.Skills)),
		Experience:        fields.ParseExperience(r.Lookup(fields.Experience)),
		PreferredJobTypes: fields.ParseJobTypes(r.Lookup(fields.PreferredJobTypes)),
		ProfileSummary:    r.String(fields.ProfileSummary),
		ResumeURL:         r.String(fields.ResumeURL),
	}
}

var textFields = []fields.Field{
	fields.FullName,
	fields.Email,
	fields.Phone,
	fields.Location,
	fields.ProfileSummary,
	fields.ResumeURL,
}

// Patch prepares a partial update. Modelled fields present in rec are stored
// under their canonical key in canonical shape; fields rec does not mention are
// left out so a merge keeps the stored value. Unmodelled keys pass through.
func Patch(rec fields.Record) fields.Record {
	out := make(fields.Record, len(rec))
	for k, v := range rec {
		out[k] = v
	}

	for _, f := range textFields {
		if rec.Has(f) {
			out.Set(f, rec.String(f))
		}
	}
	if rec.Has(fields.Skills) {
		out.Set(fields.Skills, nonNil(fields.ParseSkills(rec.Lookup(fields.Skills))))
	}
	if rec.Has(fields.Experience) {
		exp := fields.ParseExperience(rec.Lookup(fields.Experience))
		if exp == nil {
			exp = []fields.Position{}
		}
		out.Set(fields.Experience, exp)
	}
	if rec.Has(fields.PreferredJobTypes) {
		out.Set(fields.PreferredJobTypes, nonNil(fields.ParseJobTypes(rec.Lookup(fields.PreferredJobTypes))))
	}
	return out
}

func (p Profile) HasLocation() bool {
	return strings.TrimSpace(p.Location) != ""
}

// YearsOfExperience approximates seniority by the number of recorded positions.
func (p Profile) YearsOfExperience() int {
	return len(p.Experience)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
