package features2d

import "github.com/reoring/featstore/binding"

// MSER configures the maximally stable extremal region detector.
type MSER struct{ *binding.Binding }

// NewMSER returns an MSER configuration holding the defaults
// (5, 60, 14400, .25, .2, 200, 1.01, .003, 5, false).
func NewMSER(opts ...binding.Option) (*MSER, error) {
	return create(MSERSchema, func(b *binding.Binding) *MSER { return &MSER{b} }, opts)
}

func (d *MSER) Delta() int             { return int(d.Int("delta")) }
func (d *MSER) MinArea() int           { return int(d.Int("minArea")) }
func (d *MSER) MaxArea() int           { return int(d.Int("maxArea")) }
func (d *MSER) MaxVariation() float64  { return d.Float("maxVariation") }
func (d *MSER) MinDiversity() float64  { return d.Float("minDiversity") }
func (d *MSER) MaxEvolution() int      { return int(d.Int("maxEvolution")) }
func (d *MSER) AreaThreshold() float64 { return d.Float("areaThreshold") }
func (d *MSER) MinMargin() float64     { return d.Float("minMargin") }
func (d *MSER) EdgeBlurSize() int      { return int(d.Int("edgeBlurSize")) }
func (d *MSER) Pass2Only() bool        { return d.Bool("pass2Only") }

func (d *MSER) SetDelta(v int) error             { return setInt(d.Binding, "delta", v) }
func (d *MSER) SetMinArea(v int) error           { return setInt(d.Binding, "minArea", v) }
func (d *MSER) SetMaxArea(v int) error           { return setInt(d.Binding, "maxArea", v) }
func (d *MSER) SetMaxVariation(v float64) error  { return setFloat(d.Binding, "maxVariation", v) }
func (d *MSER) SetMinDiversity(v float64) error  { return setFloat(d.Binding, "minDiversity", v) }
func (d *MSER) SetMaxEvolution(v int) error      { return setInt(d.Binding, "maxEvolution", v) }
func (d *MSER) SetAreaThreshold(v float64) error { return setFloat(d.Binding, "areaThreshold", v) }
func (d *MSER) SetMinMargin(v float64) error     { return setFloat(d.Binding, "minMargin", v) }
func (d *MSER) SetEdgeBlurSize(v int) error      { return setInt(d.Binding, "edgeBlurSize", v) }
func (d *MSER) SetPass2Only(v bool) error        { return setBool(d.Binding, "pass2Only", v) }
