package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:images
	imageFS embed.FS
)

// SpriteLoader loads sprite sheets from a file system and caches both the
// sheets and the per-frame sub-images cut from them.
type SpriteLoader struct {
	fsys       fs.FS
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

// NewSpriteLoader reads from dir, or from the embedded images when dir is empty.
func NewSpriteLoader(dir string) *SpriteLoader {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	} else {
		sub, err := fs.Sub(imageFS, "images")
		if err != nil {
			panic(fmt.Sprintf("embedded images missing: %v", err))
		}
		fsys = sub
	}
	return &SpriteLoader{
		fsys:       fsys,
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *SpriteLoader) LoadImage(name string) (*ebiten.Image, error) {
	if img, ok := l.cache[name]; ok {
		return img, nil
	}

	imgBytes, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read sprite sheet %s: %w", name, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode sprite sheet %s: %w", name, err)
	}

	l.cache[name] = img
	return img, nil
}

// GetFrame returns a cached sub-image for one frame of a sheet.
func (l *SpriteLoader) GetFrame(name string, frameIndex int, srcRect image.Rectangle) (*ebiten.Image, error) {
	key := fmt.Sprintf("%s/%d", name, frameIndex)
	if img, ok := l.frameCache[key]; ok {
		return img, nil
	}

	sheet, err := l.LoadImage(name)
	if err != nil {
		return nil, err
	}
	if !srcRect.In(sheet.Bounds()) {
		return nil, fmt.Errorf("frame %d of %s: %v outside sheet bounds %v", frameIndex, name, srcRect, sheet.Bounds())
	}

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame
	return frame, nil
}

var spriteLoader = NewSpriteLoader("")

// UseSpriteDir switches the global loader to sheets on disk.
func UseSpriteDir(dir string) {
	spriteLoader = NewSpriteLoader(dir)
}

func GetFrame(name string, frameIndex int, srcRect image.Rectangle) (*ebiten.Image, error) {
	return spriteLoader.GetFrame(name, frameIndex, srcRect)
}
