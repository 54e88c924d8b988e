package features2d

import "github.com/reoring/featstore/binding"

// FREAK configures the FREAK descriptor extractor.
type FREAK struct{ *binding.Binding }

// NewFREAK returns a FREAK configuration holding the defaults (orientation
// and scale normalized, pattern scale 22, 4 octaves).
func NewFREAK(opts ...binding.Option) (*FREAK, error) {
	return create(FREAKSchema, func(b *binding.Binding) *FREAK { return &FREAK{b} }, opts)
}

func (d *FREAK) OrientationNormalized() bool { return d.Bool("orientationNormalized") }
func (d *FREAK) ScaleNormalized() bool       { return d.Bool("scaleNormalized") }
func (d *FREAK) PatternScale() float32       { return d.Float32("patternScale") }
func (d *FREAK) NOctaves() int               { return int(d.Int("nOctaves")) }

func (d *FREAK) SetOrientationNormalized(v bool) error {
	return setBool(d.Binding, "orientationNormalized", v)
}

func (d *FREAK) SetScaleNormalized(v bool) error {
	return setBool(d.Binding, "scaleNormalized", v)
}

func (d *FREAK) SetPatternScale(v float32) error {
	return setFloat(d.Binding, "patternScale", float64(v))
}

func (d *FREAK) SetNOctaves(v int) error { return setInt(d.Binding, "nOctaves", v) }
