package enums

// UOM defines units of measure.
type UOM int

const (
	// UOMImperial defines imperial system.
	UOMImperial UOM = iota
	// UOMMetric defines metric system.
	UOMMetric
)

var uomNames = map[UOM]string{
	UOMImperial: "imperial",
	UOMMetric:   "metric",
}

// String returns UOM name.
func (i UOM) String() string {
	if s, ok := uomNames[i]; ok {
		return s
	}

	return "unknown"
}
