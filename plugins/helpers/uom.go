package helpers

import (
	"math"

	"github.com/go-home-io/alexa-bridge/plugins/device/enums"
)

const (
	// Multiplier between 0-100% and 16-bit device level.
	levelScale = 655.35
	// Device-native temperatures are stored in tenths of a degree.
	nativeTemperatureScale = 10.0
)

// UOMConvertTemperature converts temperature from one system to another.
func UOMConvertTemperature(value float64, currentUOM enums.UOM, desiredUOM enums.UOM) float64 {
	if desiredUOM == currentUOM {
		return value
	}

	if currentUOM == enums.UOMMetric {
		return value*1.8 + 32.0
	}

	return (value - 32.0) * 5.0 / 9.0
}

// PercentToLevel converts 0-100% value into 16-bit device level.
// Values outside of the range are clamped.
func PercentToLevel(percent float64) uint16 {
	return clampUint16(math.Round(percent * levelScale))
}

// LevelToPercent converts 16-bit device level into 0-100% value.
func LevelToPercent(level uint16) float64 {
	return float64(level) / levelScale
}

// CelsiusToNative converts Celsius into tenths of a degree Fahrenheit.
// Values outside of uint16 range are clamped.
func CelsiusToNative(celsius float64) uint16 {
	fahrenheit := UOMConvertTemperature(celsius, enums.UOMMetric, enums.UOMImperial)
	return clampUint16(math.Round(fahrenheit * nativeTemperatureScale))
}

// CelsiusFitsNative checks whether Celsius value can be stored natively
// without clamping.
func CelsiusFitsNative(celsius float64) bool {
	fahrenheit := UOMConvertTemperature(celsius, enums.UOMMetric, enums.UOMImperial)
	native := math.Round(fahrenheit * nativeTemperatureScale)
	return native >= 0 && native <= math.MaxUint16
}

// NativeToCelsius converts tenths of a degree Fahrenheit into Celsius.
func NativeToCelsius(native uint16) float64 {
	return UOMConvertTemperature(float64(native)/nativeTemperatureScale, enums.UOMImperial, enums.UOMMetric)
}

// Clamps rounded value into uint16 range.
func clampUint16(value float64) uint16 {
	switch {
	case math.IsNaN(value), value <= 0:
		return 0
	case value >= math.MaxUint16:
		return math.MaxUint16
	}

	return uint16(value)
}
