package features2d

import "github.com/reoring/featstore/binding"

// BRISK configures the BRISK detector and descriptor.
type BRISK struct{ *binding.Binding }

// NewBRISK returns a BRISK configuration holding the defaults (threshold 30,
// 3 octaves, pattern scale 1).
func NewBRISK(opts ...binding.Option) (*BRISK, error) {
	return create(BRISKSchema, func(b *binding.Binding) *BRISK { return &BRISK{b} }, opts)
}

func (d *BRISK) Threshold() int        { return int(d.Int("threshold")) }
func (d *BRISK) Octaves() int          { return int(d.Int("octaves")) }
func (d *BRISK) PatternScale() float32 { return d.Float32("patternScale") }

func (d *BRISK) SetThreshold(v int) error { return setInt(d.Binding, "threshold", v) }
func (d *BRISK) SetOctaves(v int) error   { return setInt(d.Binding, "octaves", v) }

func (d *BRISK) SetPatternScale(v float32) error {
	return setFloat(d.Binding, "patternScale", float64(v))
}
