package migration

import "fmt"

// Pending returns the migrations not yet recorded in applied, in order.
// applied maps version to stored checksum. It fails when a recorded file was
// edited after it ran, or when the database knows a version this build does not.
func Pending(all []Migration, applied map[int64]string) ([]Migration, error) {
	known := make(map[int64]struct{}, len(all))
	out := make([]Migration, 0, len(all))

	for _, m := range all {
		known[m.Version] = struct{}{}
		sum, ok := applied[m.Version]
		if !ok {
			out = append(out, m)
			continue
		}
		if sum != m.Checksum {
			return nil, fmt.Errorf("migration %s was changed after it was applied", m.Filename)
		}
	}

	for v := range applied {
		if _, ok := known[v]; !ok {
			return nil, fmt.Errorf("database has migration V%d that this build does not ship", v)
		}
	}
	return out, nil
}
