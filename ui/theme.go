package ui

import (
	"bytes"
	"image/color"

	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	textColor     color.Color = colornames.White
	barColor                  = color.NRGBA{R: 0x1b, G: 0x1f, B: 0x2a, A: 0xff}
	buttonIdle                = color.NRGBA{R: 0x33, G: 0x3a, B: 0x4d, A: 0xff}
	buttonHover               = color.NRGBA{R: 0x46, G: 0x50, B: 0x6b, A: 0xff}
	buttonPressed             = color.NRGBA{R: 0x24, G: 0x29, B: 0x36, A: 0xff}
)

// Face returns the host UI font, falling back to basicfont if goregular
// cannot be parsed.
func Face(size float64) text.Face {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return text.NewGoXFace(basicfont.Face7x13)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonIdle),
		Hover:   imageui.NewNineSliceColor(buttonHover),
		Pressed: imageui.NewNineSliceColor(buttonPressed),
	}
}

func buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{Idle: textColor}
}
