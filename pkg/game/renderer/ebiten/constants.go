package ebiten

import (
	"image/color"

	"advworld/pkg/game/renderer"
)

// Color palette for the game - brighter colors for visibility
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}  // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}  // Darker for map area
	colorPanelBackground = color.RGBA{30, 30, 50, 220}  // Semi-transparent dark
	colorPlayer          = color.RGBA{0, 160, 0, 255}   // Green
	colorWallBg          = color.RGBA{60, 60, 80, 255}  // Darker background for walls
	colorDoor            = color.RGBA{150, 150, 0, 255} // Yellow
	colorKey             = color.RGBA{40, 80, 180, 255} // Blue
	colorBomb            = color.RGBA{180, 50, 50, 255} // Red
	colorTorch           = color.RGBA{200, 120, 0, 255} // Orange
	colorRiddle          = color.RGBA{120, 60, 160, 255}
	colorSpring          = color.RGBA{0, 120, 120, 255}
	colorObstacle        = color.RGBA{110, 80, 40, 255} // Brown
	colorSwitch          = color.RGBA{40, 120, 160, 255}
	colorTeleport        = color.RGBA{160, 60, 140, 255} // Pink
	colorDark            = color.RGBA{8, 8, 12, 255}
	colorLegend          = color.RGBA{40, 40, 70, 255}
)

// styleBackground maps a glyph style to its tile colour
var styleBackground = map[renderer.TextStyle]color.Color{
	renderer.StyleWall:     colorWallBg,
	renderer.StyleDoor:     colorDoor,
	renderer.StyleKey:      colorKey,
	renderer.StyleBomb:     colorBomb,
	renderer.StyleTorch:    colorTorch,
	renderer.StyleRiddle:   colorRiddle,
	renderer.StyleSpring:   colorSpring,
	renderer.StyleObstacle: colorObstacle,
	renderer.StyleSwitch:   colorSwitch,
	renderer.StyleTeleport: colorTeleport,
	renderer.StyleDark:     colorDark,
	renderer.StylePlayer:   colorPlayer,
	renderer.StyleLegend:   colorLegend,
	renderer.StyleStatus:   colorPanelBackground,
}
