package sidefile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/event"
)

// Source loads side files. Read reports ok=false when the file does not
// exist; any other failure is an error.
type Source interface {
	Read(kind event.SideFileKind) (data []byte, ok bool, err error)
}

// DirSource reads <Dir>/<Kind>.json, the layout the game writes next to
// its journals.
type DirSource struct {
	Dir string
}

func (s DirSource) Read(kind event.SideFileKind) ([]byte, bool, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, string(kind)+".json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// MapSource serves side files from memory.
type MapSource map[event.SideFileKind][]byte

func (s MapSource) Read(kind event.SideFileKind) ([]byte, bool, error) {
	data, ok := s[kind]
	return data, ok, nil
}
