package features2d

import "github.com/reoring/featstore/binding"

// HarrisLaplace configures the Harris-Laplace corner detector.
type HarrisLaplace struct{ *binding.Binding }

// NewHarrisLaplace returns a Harris-Laplace configuration holding the
// defaults (6 octaves, thresholds 0.01, 5000 corners, 4 layers).
func NewHarrisLaplace(opts ...binding.Option) (*HarrisLaplace, error) {
	return create(HarrisLaplaceSchema, func(b *binding.Binding) *HarrisLaplace { return &HarrisLaplace{b} }, opts)
}

func (d *HarrisLaplace) NumOctaves() int     { return int(d.Int("numOctaves")) }
func (d *HarrisLaplace) CornThresh() float32 { return d.Float32("corn_thresh") }
func (d *HarrisLaplace) DOGThresh() float32  { return d.Float32("DOG_thresh") }
func (d *HarrisLaplace) MaxCorners() int     { return int(d.Int("maxCorners")) }
func (d *HarrisLaplace) NumLayers() int      { return int(d.Int("num_layers")) }

func (d *HarrisLaplace) SetNumOctaves(v int) error { return setInt(d.Binding, "numOctaves", v) }

func (d *HarrisLaplace) SetCornThresh(v float32) error {
	return setFloat(d.Binding, "corn_thresh", float64(v))
}

func (d *HarrisLaplace) SetDOGThresh(v float32) error {
	return setFloat(d.Binding, "DOG_thresh", float64(v))
}

func (d *HarrisLaplace) SetMaxCorners(v int) error { return setInt(d.Binding, "maxCorners", v) }
func (d *HarrisLaplace) SetNumLayers(v int) error  { return setInt(d.Binding, "num_layers", v) }
