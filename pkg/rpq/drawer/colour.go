package drawer

import (
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint
)

const maxRGB = 240

// heatColour maps a fraction in [0, 1] to a hex colour scaling from blue to
// red.
func heatColour(fraction float64) (string, error) {
	if fraction < 0 {
		fraction = 0
	}

	if fraction > 1 {
		fraction = 1
	}

	red := maxRGB * fraction
	blue := -maxRGB*fraction + maxRGB

	colour, err := colors.RGB(uint8(red), 0, uint8(blue)) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}
