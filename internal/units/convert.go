// Package units holds display-oriented numeric conversions.
package units

import "math"

// FahrenheitToCelsius converts f to Celsius, rounded to the nearest degree.
func FahrenheitToCelsius(f float64) int {
	return int(math.Round((f - 32) * 5 / 9))
}
