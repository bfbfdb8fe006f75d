package model

import (
	"slices"
	"strconv"
	"strings"
)

// Tag field names understood by the tag store.
//
// Names are lower-case; backends compare them case-insensitively.
const (
	// FieldArtist is the per-track artist.
	FieldArtist = "artist"

	// FieldAlbumArtist is the album-level artist.
	FieldAlbumArtist = "albumartist"

	// FieldDiscNumber is the disc number, either "N" or "N/M".
	FieldDiscNumber = "discnumber"

	// FieldDiscTotal is the total number of discs.
	FieldDiscTotal = "disctotal"

	// FieldTotalDiscs is the alternate name for FieldDiscTotal.
	FieldTotalDiscs = "totaldiscs"
)

// Values holds the ordered values stored under a single tag field.
//
// Most fields carry exactly one value, but Vorbis comments and ID3v2.4
// text frames may repeat a field, so comparisons are done on the whole
// sequence.
//
// Example:
//
//	a := Values{"Band X"}
//	b := Values{"Band X", "Guest"}
//	a.Equal(b) // false
type Values []string

// First returns the first value, or an empty string if there is none.
func (v Values) First() string {
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Equal reports whether v and other hold the same values in the same order.
func (v Values) Equal(other Values) bool {
	return slices.Equal(v, other)
}

// Clone returns a copy of v that does not share its backing array.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	return slices.Clone(v)
}

// NormalizeField returns the canonical (lower-case, trimmed) form of a
// field name.
func NormalizeField(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// ParseNumberPair parses a track or disc number that may be "N" or "N/M".
//
// Components that are missing or not numeric are returned as 0.
//
// Example:
//
//	ParseNumberPair("1/2") // 1, 2
//	ParseNumberPair("3")   // 3, 0
//	ParseNumberPair("")    // 0, 0
func ParseNumberPair(s string) (num, total int) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0
	}
	if idx := strings.Index(s, "/"); idx >= 0 {
		num, _ = strconv.Atoi(strings.TrimSpace(s[:idx]))
		total, _ = strconv.Atoi(strings.TrimSpace(s[idx+1:]))
		return num, total
	}
	num, _ = strconv.Atoi(s)
	return num, 0
}
