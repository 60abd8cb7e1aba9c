package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the range
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(60, 60, 80)    // Slate
	RgbDebugText  = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbHintText   = tcell.NewRGBColor(180, 180, 180) // Brighter gray

	RgbStartEasy   = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbStartMedium = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbStartHard   = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbTarget      = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbBullseye    = tcell.NewRGBColor(255, 255, 255) // Bright white

	RgbProjectile  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbCrosshair   = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbMuzzleFlash = tcell.NewRGBColor(255, 255, 200) // Yellow-white flash

	RgbBannerBg = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbBannerFg = tcell.NewRGBColor(0, 0, 0)       // Dark text
)

var (
	styleBase       = tcell.StyleDefault.Background(RgbBackground)
	styleStatus     = tcell.StyleDefault.Foreground(RgbStatusBar).Background(RgbStatusBg).Bold(true)
	styleDebug      = styleBase.Foreground(RgbDebugText)
	styleHint       = styleBase.Foreground(RgbHintText)
	styleTarget     = styleBase.Foreground(RgbTarget).Bold(true)
	styleBullseye   = styleBase.Foreground(RgbBullseye).Bold(true)
	styleProjectile = styleBase.Foreground(RgbProjectile)
	styleCrosshair  = styleBase.Foreground(RgbCrosshair).Bold(true)
	styleFlash      = styleBase.Foreground(RgbMuzzleFlash).Bold(true)
	styleBanner     = tcell.StyleDefault.Foreground(RgbBannerFg).Background(RgbBannerBg).Bold(true)
)

// startStyle colors a start target by its label
func startStyle(label rune) tcell.Style {
	switch label {
	case 'E':
		return styleBase.Foreground(RgbStartEasy).Bold(true)
	case 'M':
		return styleBase.Foreground(RgbStartMedium).Bold(true)
	case 'H':
		return styleBase.Foreground(RgbStartHard).Bold(true)
	default:
		return styleTarget
	}
}
