package assets

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed *.png
var assetsFS embed.FS

// ErrUnknownAsset is returned for a logical name with no registered file.
var ErrUnknownAsset = errors.New("assets: unknown asset")

// Names maps the logical names used by prefabs to embedded files.
var Names = map[string]string{
	"sky":      "sky.png",
	"platform": "platform.png",
	"diamond":  "diamond.png",
	"dude":     "dude.png",
}

// ImageSource resolves a logical image name.
type ImageSource interface {
	Image(name string) (*ebiten.Image, error)
}

// Embedded loads images from the binary and caches them per name.
type Embedded struct {
	mu    sync.Mutex
	cache map[string]*ebiten.Image
}

func NewEmbedded() *Embedded {
	return &Embedded{cache: make(map[string]*ebiten.Image)}
}

func (e *Embedded) Image(name string) (*ebiten.Image, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if img, ok := e.cache[name]; ok {
		return img, nil
	}
	src, err := Decode(name)
	if err != nil {
		return nil, err
	}
	img := ebiten.NewImageFromImage(src)
	e.cache[name] = img
	return img, nil
}

// Preload resolves every name up front so a missing asset fails the mount
// rather than a later frame.
func Preload(src ImageSource, names ...string) error {
	for _, name := range names {
		if _, err := src.Image(name); err != nil {
			return fmt.Errorf("assets: preload %q: %w", name, err)
		}
	}
	return nil
}

// Decode returns the decoded image for a logical name or an assets-relative path.
func Decode(name string) (image.Image, error) {
	b, err := LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %q: %w", name, err)
	}
	return img, nil
}

// LoadFile loads an embedded asset by logical name or assets-relative path.
func LoadFile(name string) ([]byte, error) {
	file, ok := Names[name]
	if !ok {
		file = cleanAssetPath(name)
		if !strings.HasSuffix(file, ".png") {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAsset, name)
		}
	}
	b, err := assetsFS.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownAsset, name, err)
	}
	return b, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
		return s[idx+len("/assets/"):]
	}
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
