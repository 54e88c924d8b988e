package features2d

import "github.com/reoring/featstore/binding"

// Descriptor types and diffusivity kinds understood by AKAZE.
const (
	AKAZEDescriptorKAZEUpright = 2
	AKAZEDescriptorKAZE        = 3
	AKAZEDescriptorMLDBUpright = 4
	AKAZEDescriptorMLDB        = 5

	DiffusivityPMG1        = 0
	DiffusivityPMG2        = 1
	DiffusivityWeickert    = 2
	DiffusivityCharbonnier = 3
)

// AKAZE configures the accelerated KAZE detector and descriptor.
type AKAZE struct{ *binding.Binding }

// NewAKAZE returns an AKAZE configuration holding the defaults
// (MLDB, 0 bits, 3 channels, threshold 0.001, 4 octaves, 4 sublevels, PM_G2).
func NewAKAZE(opts ...binding.Option) (*AKAZE, error) {
	return create(AKAZESchema, func(b *binding.Binding) *AKAZE { return &AKAZE{b} }, opts)
}

func (a *AKAZE) DescriptorType() int     { return int(a.Int("descriptor")) }
func (a *AKAZE) DescriptorChannels() int { return int(a.Int("descriptor_channels")) }
func (a *AKAZE) DescriptorSize() int     { return int(a.Int("descriptor_size")) }
func (a *AKAZE) Threshold() float32      { return a.Float32("threshold") }
func (a *AKAZE) NOctaves() int           { return int(a.Int("octaves")) }
func (a *AKAZE) NOctaveLayers() int      { return int(a.Int("sublevels")) }
func (a *AKAZE) Diffusivity() int        { return int(a.Int("diffusivity")) }

func (a *AKAZE) SetDescriptorType(v int) error {
	return setInt(a.Binding, "descriptor", v)
}

func (a *AKAZE) SetDescriptorChannels(v int) error {
	return setInt(a.Binding, "descriptor_channels", v)
}

func (a *AKAZE) SetDescriptorSize(v int) error {
	return setInt(a.Binding, "descriptor_size", v)
}

func (a *AKAZE) SetThreshold(v float32) error {
	return setFloat(a.Binding, "threshold", float64(v))
}

func (a *AKAZE) SetNOctaves(v int) error {
	return setInt(a.Binding, "octaves", v)
}

func (a *AKAZE) SetNOctaveLayers(v int) error {
	return setInt(a.Binding, "sublevels", v)
}

func (a *AKAZE) SetDiffusivity(v int) error {
	return setInt(a.Binding, "diffusivity", v)
}
