package game

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	headline text.Face
	title    text.Face
	body     text.Face
	small    text.Face
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("load bold font: %w", err)
	}
	return &fonts{
		headline: &text.GoTextFace{Source: bold, Size: 44},
		title:    &text.GoTextFace{Source: bold, Size: 28},
		body:     &text.GoTextFace{Source: regular, Size: 17},
		small:    &text.GoTextFace{Source: regular, Size: 13},
	}, nil
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawTextCentered(dst *ebiten.Image, s string, face text.Face, cx, y float64, clr color.Color) {
	w, _ := text.Measure(s, face, 0)
	drawText(dst, s, face, cx-w/2, y, clr)
}

// wrap breaks s into lines no wider than maxWidth, splitting on spaces.
func wrap(s string, face text.Face, maxWidth float64) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(s) {
		next := word
		if line != "" {
			next = line + " " + word
		}
		if line != "" && text.Advance(next, face) > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = next
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
