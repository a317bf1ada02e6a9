package colorutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brookxc/etmenu/pkg/logger"
)

// darkenStep is subtracted from each RGB channel when deriving the darker
// accent, clamped at 0.
const darkenStep = 20

// Deriver computes accent colors from a restaurant's base theme color
type Deriver struct {
	logger *logger.Logger
}

// NewDeriver creates a color deriver with the given logger
func NewDeriver(log *logger.Logger) *Deriver {
	return &Deriver{
		logger: log.WithComponent("colorutil"),
	}
}

// Lighten converts a 6-digit hex color to an rgba string at the given
// opacity (0-1). Malformed input falls back to black at the same opacity.
func (d *Deriver) Lighten(hex string, opacity float64) string {
	r, g, b, err := parseHex(hex)
	if err != nil {
		d.logger.Warn("Failed to derive lighter color", "color", hex, "error", err)
		return fmt.Sprintf("rgba(0, 0, 0, %s)", formatOpacity(opacity))
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatOpacity(opacity))
}

// Darken subtracts a fixed amount from each channel of a 6-digit hex color
// and re-encodes it. Malformed input is returned unchanged.
func (d *Deriver) Darken(hex string) string {
	r, g, b, err := parseHex(hex)
	if err != nil {
		d.logger.Warn("Failed to derive darker color", "color", hex, "error", err)
		return hex
	}

	r = clampChannel(r - darkenStep)
	g = clampChannel(g - darkenStep)
	b = clampChannel(b - darkenStep)

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// parseHex splits a "#RRGGBB" color into its channel values
func parseHex(hex string) (r, g, b int, err error) {
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return 0, 0, 0, fmt.Errorf("expected 6-digit hex color, got %q", hex)
	}

	channels := [3]int{}
	for i := 0; i < 3; i++ {
		v, parseErr := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if parseErr != nil {
			return 0, 0, 0, fmt.Errorf("invalid hex color %q: %v", hex, parseErr)
		}
		channels[i] = int(v)
	}

	return channels[0], channels[1], channels[2], nil
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// formatOpacity renders an opacity without trailing zeros (0.15, not 0.150000)
func formatOpacity(opacity float64) string {
	return strconv.FormatFloat(opacity, 'f', -1, 64)
}
