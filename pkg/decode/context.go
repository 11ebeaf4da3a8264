package decode

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Context carries what a record cannot say about itself: its position in
// the session and the schema revision announced by the last Fileheader.
type Context struct {
	SequenceID uint64
	Session    int
	// Revision is nil when no usable game version has been seen.
	Revision *semver.Version
	Odyssey  bool
}

var (
	revisionMapping = semver.MustParse("3.3.0")
	revisionOdyssey = semver.MustParse("4.0.0")
)

// ParseRevision turns a journal gameversion ("3.8.0.404", "4.0.0.1450",
// "2.2 (Beta 2)") into a semantic version using its leading numeric
// components.
func ParseRevision(gameVersion string) (*semver.Version, error) {
	s := strings.TrimSpace(gameVersion)
	end := 0
	dots := 0
	for end < len(s) {
		c := s[end]
		if c == '.' {
			if dots == 2 {
				break
			}
			dots++
		} else if c < '0' || c > '9' {
			break
		}
		end++
	}
	core := strings.TrimSuffix(s[:end], ".")
	if core == "" {
		return nil, fmt.Errorf("parse revision %q: no numeric version", gameVersion)
	}
	v, err := semver.NewVersion(core)
	if err != nil {
		return nil, fmt.Errorf("parse revision %q: %w", gameVersion, err)
	}
	return v, nil
}

// SupportsMapping reports whether the revision has surface mapping. An
// unknown revision is treated as current.
func (c Context) SupportsMapping() bool {
	return c.Revision == nil || !c.Revision.LessThan(revisionMapping)
}

// IsOdyssey reports whether the context describes an Odyssey-era client.
func IsOdyssey(rev *semver.Version, flag *bool) bool {
	if flag != nil {
		return *flag
	}
	return rev != nil && !rev.LessThan(revisionOdyssey)
}
