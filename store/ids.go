package store

import "strings"

const maxIDLen = 128

// NormalizeID trims and bounds a caller-supplied record id. History rows may
// be seeded from outside the app, so ids are not required to be UUIDs; they
// only have to be non-empty and of sane length. Non-conforming ids are
// rejected here instead of being branched on per query.
func NormalizeID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > maxIDLen {
		return "", ValidationError("invalid id")
	}
	return id, nil
}
