package canvas

import (
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// HUDFontSize is the pixel size of the default HUD face.
const HUDFontSize = 13

var (
	defaultFace     font.Face
	defaultFaceOnce sync.Once
)

// DefaultFace returns the HUD font: Go Mono at HUDFontSize, or the built-in
// 7x13 bitmap face if the TrueType data cannot be loaded.
func DefaultFace() font.Face {
	defaultFaceOnce.Do(func() {
		f, err := NewFace(gomono.TTF, HUDFontSize)
		if err != nil {
			log.Printf("hud font: %v, using basicfont", err)
			defaultFace = basicfont.Face7x13
			return
		}
		defaultFace = f
	})
	return defaultFace
}

// NewFace builds a face from TrueType or OpenType bytes.
func NewFace(ttf []byte, pixels float64) (font.Face, error) {
	f, err := opentype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: pixels, DPI: 72, Hinting: font.HintingFull})
}

// LineHeight is the distance between baselines for face.
func LineHeight(face font.Face) int {
	return face.Metrics().Height.Ceil()
}
