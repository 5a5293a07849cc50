package fields

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

// StringOrList holds a value that was stored either as one delimited string or
// as a list. The zero value is an empty list.
type StringOrList struct {
	text   string
	items  []string
	isList bool
}

// NewStringOrList classifies raw. ok is false for anything that is neither a
// string nor a list (nil, numbers, objects).
func NewStringOrList(raw any) (v StringOrList, ok bool) {
	switch t := raw.(type) {
	case string:
		return StringOrList{text: t}, true
	case []string:
		items := make([]string, len(t))
		copy(items, t)
		return StringOrList{items: items, isList: true}, true
	case []any:
		items := make([]string, 0, len(t))
		for _, it := range t {
			s, isStr := it.(string)
			if !isStr {
				continue
			}
			items = append(items, s)
		}
		return StringOrList{items: items, isList: true}, true
	default:
		return StringOrList{}, false
	}
}

func (v StringOrList) IsList() bool { return v.isList }

// Split returns the canonical list. Lists are returned as stored; strings are
// split on sep with each token trimmed and empty tokens dropped.
func (v StringOrList) Split(sep string) []string {
	if v.isList {
		out := make([]string, len(v.items))
		copy(out, v.items)
		return out
	}
	out := make([]string, 0)
	for _, tok := range strings.Split(v.text, sep) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

func parseDelimited(raw any, sep string) []string {
	v, ok := NewStringOrList(raw)
	if !ok {
		return []string{}
	}
	return v.Split(sep)
}

// ParseSkills normalizes a skills value: comma-joined string or list.
func ParseSkills(raw any) []string {
	return parseDelimited(raw, ",")
}

// ParseJobTypes normalizes preferred job types with the same rule as skills.
func ParseJobTypes(raw any) []string {
	return parseDelimited(raw, ",")
}

// ParseRequirements normalizes job requirements: newline-separated string or list.
func ParseRequirements(raw any) []string {
	return parseDelimited(raw, "\n")
}

// Position is one entry of a candidate's work history.
type Position struct {
	Company     string `mapstructure:"company" json:"company,omitempty"`
	Position    string `mapstructure:"position" json:"position,omitempty"`
	StartDate   string `mapstructure:"startDate" json:"startDate,omitempty"`
	EndDate     string `mapstructure:"endDate" json:"endDate,omitempty"`
	Current     bool   `mapstructure:"current" json:"current,omitempty"`
	Description string `mapstructure:"description" json:"description,omitempty"`
}

// ParseExperience normalizes work history. A list yields one Position per
// element (objects are decoded, plain strings become the position title); raw
// text yields one Position per non-empty line.
func ParseExperience(raw any) []Position {
	switch t := raw.(type) {
	case string:
		lines := parseDelimited(t, "\n")
		out := make([]Position, 0, len(lines))
		for _, l := range lines {
			out = append(out, Position{Position: l})
		}
		return out
	case []Position:
		out := make([]Position, len(t))
		copy(out, t)
		return out
	case []any:
		out := make([]Position, 0, len(t))
		for _, it := range t {
			switch e := it.(type) {
			case string:
				out = append(out, Position{Position: strings.TrimSpace(e)})
			case map[string]any:
				out = append(out, decodePosition(e))
			case nil:
				continue
			default:
				out = append(out, Position{})
			}
		}
		return out
	default:
		return []Position{}
	}
}

func decodePosition(m map[string]any) Position {
	var p Position
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &p,
	})
	if err != nil {
		return p
	}
	// A malformed entry still counts toward years of experience.
	_ = dec.Decode(m)
	return p
}
