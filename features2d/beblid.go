package features2d

import (
	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/binding"
)

// BEBLID descriptor sizes.
const (
	BEBLIDSize512Bits = 100
	BEBLIDSize256Bits = 101
)

// BEBLID configures the boosted efficient binary local image descriptor.
type BEBLID struct{ *binding.Binding }

// NewBEBLID returns a BEBLID configuration. The scale factor has no default
// and must be given; the descriptor size defaults to 512 bits.
func NewBEBLID(scaleFactor float32, opts ...binding.Option) (*BEBLID, error) {
	opts = append([]binding.Option{binding.WithParam("scale_factor", featstore.Float(float64(scaleFactor)))}, opts...)
	return create(BEBLIDSchema, func(b *binding.Binding) *BEBLID { return &BEBLID{b} }, opts)
}

func (d *BEBLID) ScaleFactor() float32 { return d.Float32("scale_factor") }
func (d *BEBLID) NBits() int           { return int(d.Int("n_bits")) }

func (d *BEBLID) SetScaleFactor(v float32) error {
	return setFloat(d.Binding, "scale_factor", float64(v))
}

func (d *BEBLID) SetNBits(v int) error { return setInt(d.Binding, "n_bits", v) }
