// Package ebiten provides an Ebiten-based 2D graphical renderer for the arena.
package ebiten

import "image/color"

// Color palette for the arena
var (
	colorBackground  = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorFloor       = color.RGBA{46, 110, 56, 255}   // Grass green
	colorBlock       = color.RGBA{110, 110, 130, 255} // Stone gray
	colorBlockEdge   = color.RGBA{70, 70, 90, 255}    // Darker rim for blocks
	colorBrick       = color.RGBA{170, 100, 60, 255}  // Clay
	colorBrickMortar = color.RGBA{120, 70, 45, 255}   // Mortar lines
	colorBombArmed   = color.RGBA{255, 80, 80, 255}   // Bright red ring once solid
	colorHazard      = color.RGBA{255, 170, 40, 220}  // Semi-transparent orange
	colorHazardCore  = color.RGBA{255, 240, 160, 255} // Hot center
	colorText        = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle      = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorResult      = color.RGBA{255, 220, 100, 255} // Yellow for the round result
	colorPanel       = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
)

// Layout of the window around the arena, in unscaled pixels
const (
	hudLineHeight = 16
	hudPadding    = 8
	hudLines      = 4 + 5 // status + result + messages
)
