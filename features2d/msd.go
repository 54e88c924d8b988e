package features2d

import "github.com/reoring/featstore/binding"

// MSD configures the maximal self-dissimilarity detector.
type MSD struct{ *binding.Binding }

// NewMSD returns an MSD configuration holding the defaults.
func NewMSD(opts ...binding.Option) (*MSD, error) {
	return create(MSDSchema, func(b *binding.Binding) *MSD { return &MSD{b} }, opts)
}

func (d *MSD) PatchRadius() int         { return int(d.Int("patch_radius")) }
func (d *MSD) SearchAreaRadius() int    { return int(d.Int("search_area_radius")) }
func (d *MSD) NmsRadius() int           { return int(d.Int("nms_radius")) }
func (d *MSD) NmsScaleRadius() int      { return int(d.Int("nms_scale_radius")) }
func (d *MSD) ThSaliency() float32      { return d.Float32("th_saliency") }
func (d *MSD) KNN() int                 { return int(d.Int("kNN")) }
func (d *MSD) ScaleFactor() float32     { return d.Float32("scale_factor") }
func (d *MSD) NScales() int             { return int(d.Int("n_scales")) }
func (d *MSD) ComputeOrientation() bool { return d.Bool("compute_orientation") }

func (d *MSD) SetPatchRadius(v int) error      { return setInt(d.Binding, "patch_radius", v) }
func (d *MSD) SetSearchAreaRadius(v int) error { return setInt(d.Binding, "search_area_radius", v) }
func (d *MSD) SetNmsRadius(v int) error        { return setInt(d.Binding, "nms_radius", v) }
func (d *MSD) SetNmsScaleRadius(v int) error   { return setInt(d.Binding, "nms_scale_radius", v) }

func (d *MSD) SetThSaliency(v float32) error {
	return setFloat(d.Binding, "th_saliency", float64(v))
}

func (d *MSD) SetKNN(v int) error { return setInt(d.Binding, "kNN", v) }

func (d *MSD) SetScaleFactor(v float32) error {
	return setFloat(d.Binding, "scale_factor", float64(v))
}

// SetNScales sets the number of scales; -1 derives it from the image size.
func (d *MSD) SetNScales(v int) error { return setInt(d.Binding, "n_scales", v) }

func (d *MSD) SetComputeOrientation(v bool) error {
	return setBool(d.Binding, "compute_orientation", v)
}
