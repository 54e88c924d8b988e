package features2d

import "github.com/reoring/featstore/binding"

// BRIEF configures the BRIEF descriptor extractor.
type BRIEF struct{ *binding.Binding }

// NewBRIEF returns a BRIEF configuration holding the defaults (32 bytes, no
// orientation).
func NewBRIEF(opts ...binding.Option) (*BRIEF, error) {
	return create(BRIEFSchema, func(b *binding.Binding) *BRIEF { return &BRIEF{b} }, opts)
}

func (d *BRIEF) DescriptorSize() int  { return int(d.Int("descriptorSize")) }
func (d *BRIEF) UseOrientation() bool { return d.Bool("use_orientation") }

func (d *BRIEF) SetDescriptorSize(v int) error { return setInt(d.Binding, "descriptorSize", v) }
func (d *BRIEF) SetUseOrientation(v bool) error {
	return setBool(d.Binding, "use_orientation", v)
}
