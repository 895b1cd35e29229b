package types

import (
	"fmt"
	"math"
)

// Measurement is the set of site dimensions a user wants to match, in millimetres.
type Measurement struct {
	// Base is the width of the gutter base
	Base float64 `json:"base"`

	// Face is the front height of the gutter
	Face float64 `json:"face"`

	// Back is the rear height of the gutter
	Back float64 `json:"back"`
}

// NewMeasurement creates a Measurement from the three dimensions
func NewMeasurement(base, face, back float64) Measurement {
	return Measurement{Base: base, Face: face, Back: back}
}

// Validate returns an error if any dimension is negative, NaN or infinite
func (m Measurement) Validate() error {
	for _, d := range []struct {
		name  string
		value float64
	}{
		{"base", m.Base},
		{"face", m.Face},
		{"back", m.Back},
	} {
		if math.IsNaN(d.value) || math.IsInf(d.value, 0) {
			return fmt.Errorf("%s measurement must be a finite number: %g", d.name, d.value)
		}
		if d.value < 0 {
			return fmt.Errorf("%s measurement must not be negative: %g", d.name, d.value)
		}
	}
	return nil
}

// Searchable reports whether the measurement carries a Base value.
// A zero Base means the user has not entered one.
func (m Measurement) Searchable() bool {
	return m.Base > 0
}

// String returns the measurement as "base=100mm face=50mm back=30mm"
func (m Measurement) String() string {
	return fmt.Sprintf("base=%smm face=%smm back=%smm", FormatMM(m.Base), FormatMM(m.Face), FormatMM(m.Back))
}

// FormatMM formats a millimetre value without a trailing ".0" for whole numbers
func FormatMM(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
