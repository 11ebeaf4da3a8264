package session

import (
	"encoding/json"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/decode"
	"github.com/Masterminds/semver/v3"
)

// header is the slice of a record the prescan looks at.
type header struct {
	Event       string `json:"event"`
	Part        int    `json:"part"`
	GameVersion string `json:"gameversion"`
	Odyssey     *bool  `json:"Odyssey"`
}

// Prescan assigns every record its decode context. Sequence ids start at 1
// in record order. A Fileheader for part 1 opens a new session and resets
// the revision; Fileheader and LoadGame records update the revision and
// Odyssey flag for the records that follow them.
//
// The prescan is sequential and cheap so that decoding itself can run in
// parallel with no shared state.
func Prescan(records [][]byte) []decode.Context {
	out := make([]decode.Context, len(records))
	var cur decode.Context
	for i, raw := range records {
		var h header
		if err := json.Unmarshal(raw, &h); err == nil {
			switch h.Event {
			case "Fileheader":
				if h.Part <= 1 {
					cur = decode.Context{Session: cur.Session + 1}
				}
				cur.Revision, cur.Odyssey = revision(h, cur)
			case "LoadGame":
				cur.Revision, cur.Odyssey = revision(h, cur)
			}
		}
		cur.SequenceID = uint64(i + 1)
		out[i] = cur
	}
	return out
}

func revision(h header, cur decode.Context) (*semver.Version, bool) {
	rev := cur.Revision
	if h.GameVersion != "" {
		if v, err := decode.ParseRevision(h.GameVersion); err == nil {
			rev = v
		}
	}
	if h.Odyssey != nil {
		return rev, *h.Odyssey
	}
	return rev, cur.Odyssey || decode.IsOdyssey(rev, nil)
}
