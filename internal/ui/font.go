// internal/ui/font.go
package ui

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts holds the interface faces.
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// LoadFonts parses the embedded Go Regular face. On failure every face falls back to the
// fixed 7x13 bitmap font.
func LoadFonts(size, titleSize float64, log logrus.FieldLogger) *Fonts {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.WithError(err).Warn("font parse failed, using bitmap font")
		return &Fonts{Regular: basicfont.Face7x13, Title: basicfont.Face7x13}
	}
	return &Fonts{
		Regular: newFace(tt, size, log),
		Title:   newFace(tt, titleSize, log),
	}
}

func newFace(tt *opentype.Font, size float64, log logrus.FieldLogger) font.Face {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.WithError(err).WithField("size", size).Warn("font face failed, using bitmap font")
		return basicfont.Face7x13
	}
	return face
}
