package assets

import (
	"bytes"
	"embed"
	_ "image/png"
	"io/fs"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
)

const (
	DiscImage  = "images/disc.png"
	CoverImage = "images/cover.png"
)

var (
	//go:embed all:audio all:images
	assetFS embed.FS

	overlayMu sync.RWMutex
	overlay   fs.FS
)

// SetOverlayDir makes files in dir take precedence over the embedded ones.
// An empty dir removes the overlay.
func SetOverlayDir(dir string) error {
	overlayMu.Lock()
	defer overlayMu.Unlock()

	if dir == "" {
		overlay = nil
		return nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, "asset overlay %s", dir)
	}
	if !info.IsDir() {
		return errors.Errorf("asset overlay %s is not a directory", dir)
	}
	overlay = os.DirFS(dir)
	return nil
}

// ReadFile reads an asset from the overlay directory if present, otherwise
// from the embedded bundle.
func ReadFile(path string) ([]byte, error) {
	overlayMu.RLock()
	o := overlay
	overlayMu.RUnlock()

	if o != nil {
		data, err := fs.ReadFile(o, path)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, "read overlay asset %s", path)
		}
	}

	data, err := assetFS.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read asset %s", path)
	}
	return data, nil
}

// ImageLoader decodes and caches image assets
type ImageLoader struct {
	cache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{cache: make(map[string]*ebiten.Image)}
}

// Load returns the decoded image at path, decoding it on first use.
func (l *ImageLoader) Load(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}

	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", path)
	}

	l.cache[path] = img
	return img, nil
}
