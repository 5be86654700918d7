package surface

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// parseColor converts #RGB or #RRGGBB into an opaque color
func parseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, goerr.New("invalid color", goerr.V("color", s))
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, goerr.Wrap(err, "invalid color", goerr.V("color", s))
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
