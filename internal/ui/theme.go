package ui

import "image/color"

var (
	colButtonFill   = color.RGBA{60, 60, 60, 255}
	colButtonBorder = color.RGBA{200, 200, 200, 255}
	colButtonText   = color.RGBA{200, 200, 200, 255}
	colPausedText   = color.RGBA{255, 255, 255, 255}
	colStatusText   = color.RGBA{140, 140, 140, 255}
)
