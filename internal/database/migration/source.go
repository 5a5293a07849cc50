package migration

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Migration is one versioned schema file.
type Migration struct {
	Version  int64
	Name     string
	Filename string
	SQL      string
	Checksum string
}

var fileRe = regexp.MustCompile(`^V(\d+)__([A-Za-z0-9_.-]+)\.sql$`)

// Load reads every top-level .sql file of fsys. The schema ships inside the
// binary, so a misnamed file, an empty file or a hole in the version sequence
// is an error rather than something to skip.
func Load(fsys fs.FS) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("read migrations: %w", err)
	}

	byVersion := make(map[int64]Migration, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".sql" {
			continue
		}

		m, err := parseFile(fsys, name)
		if err != nil {
			return nil, err
		}
		if prev, dup := byVersion[m.Version]; dup {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", m.Version, prev.Filename, name)
		}
		byVersion[m.Version] = m
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })

	for i, m := range out {
		if want := int64(i + 1); m.Version != want {
			return nil, fmt.Errorf("migration version gap: expected V%d, found %s", want, m.Filename)
		}
	}
	return out, nil
}

func parseFile(fsys fs.FS, name string) (Migration, error) {
	parts := fileRe.FindStringSubmatch(name)
	if parts == nil {
		return Migration{}, fmt.Errorf("migration file %q does not match V<version>__<name>.sql", name)
	}
	v, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || v <= 0 {
		return Migration{}, fmt.Errorf("invalid migration version: %s", name)
	}

	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return Migration{}, err
	}
	body := strings.TrimSpace(string(b))
	if body == "" {
		return Migration{}, fmt.Errorf("empty migration file: %s", name)
	}

	sum := sha256.Sum256([]byte(body))
	return Migration{
		Version:  v,
		Name:     parts[2],
		Filename: name,
		SQL:      body,
		Checksum: hex.EncodeToString(sum[:]),
	}, nil
}
