package ui

import (
	"image"
	"image/color"

	"github.com/ingyamilmolinar/rsharp/internal/render"
)

// Button is a clickable rectangle with a centred label. OnClick fires once
// per press, on the frame the press starts inside the bounds.
type Button struct {
	r       image.Rectangle
	Text    string
	OnClick func()
	pressed bool
	held    int
}

func NewButton(text string, r image.Rectangle, onClick func()) *Button {
	return &Button{r: r, Text: text, OnClick: onClick}
}

// Rect returns the button's bounds.
func (b *Button) Rect() image.Rectangle { return b.r }

// Handle processes the mouse at (mx,my) and reports whether it is held on
// the button.
func (b *Button) Handle(mx, my int, pressed bool) bool {
	if !pressed {
		b.held = 0
		b.pressed = false
		return false
	}
	inside := image.Pt(mx, my).In(b.r)
	b.held++
	if inside && b.held == 1 && b.OnClick != nil {
		b.OnClick()
	}
	b.pressed = inside
	return inside
}

func (b *Button) Draw(dst render.Surface) {
	fill := colButtonFill
	if b.pressed {
		fill = color.RGBA{fill.R / 2, fill.G / 2, fill.B / 2, fill.A}
	}
	dst.DrawRect(b.r, fill, true)
	dst.DrawRect(b.r, colButtonBorder, false)
	tr := b.textRect()
	dst.DrawText(b.Text, tr.Min.X, tr.Min.Y, colButtonText)
}

// textRect returns the rectangle occupied by the label.
func (b *Button) textRect() image.Rectangle {
	w := render.TextWidth(b.Text)
	h := render.TextFace.Height
	x := b.r.Min.X + (b.r.Dx()-w)/2
	y := b.r.Min.Y + (b.r.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}
