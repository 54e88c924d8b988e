package features2d

import "github.com/reoring/featstore/binding"

// LATCH configures the LATCH descriptor extractor.
type LATCH struct{ *binding.Binding }

// NewLATCH returns a LATCH configuration holding the defaults (32 bytes,
// rotation invariant, half SSD size 3, sigma 2).
func NewLATCH(opts ...binding.Option) (*LATCH, error) {
	return create(LATCHSchema, func(b *binding.Binding) *LATCH { return &LATCH{b} }, opts)
}

func (d *LATCH) Bytes() int               { return int(d.Int("descriptorSize")) }
func (d *LATCH) RotationInvariance() bool { return d.Bool("rotationInvariance") }
func (d *LATCH) HalfSSDSize() int         { return int(d.Int("half_ssd_size")) }
func (d *LATCH) Sigma() float64           { return d.Float("sigma") }

func (d *LATCH) SetBytes(v int) error { return setInt(d.Binding, "descriptorSize", v) }

func (d *LATCH) SetRotationInvariance(v bool) error {
	return setBool(d.Binding, "rotationInvariance", v)
}

func (d *LATCH) SetHalfSSDSize(v int) error { return setInt(d.Binding, "half_ssd_size", v) }
func (d *LATCH) SetSigma(v float64) error   { return setFloat(d.Binding, "sigma", v) }
