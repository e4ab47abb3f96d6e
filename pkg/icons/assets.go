package icons

import (
	"os"
	"path/filepath"
)

// Assets resolves icon keys to image files under a fixed base
// directory with one fixed extension.
type Assets struct {
	Base string
	Ext  string
}

// DefaultExt is the only asset format the renderer handles.
const DefaultExt = "png"

// Path returns the asset path for key without checking existence.
func (a Assets) Path(key string) string {
	ext := a.Ext
	if ext == "" {
		ext = DefaultExt
	}
	return filepath.Join(a.Base, key+"."+ext)
}

// Resolve returns the asset path for key, or false when the file is
// missing. A missing icon is a per-item condition, never an error.
func (a Assets) Resolve(key string) (string, bool) {
	if a.Base == "" || key == "" {
		return "", false
	}
	p := a.Path(key)
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}
