package features2d

import featstore "github.com/reoring/featstore"

// Catalogues of every variant, registered under their type tags.
var (
	AKAZESchema = featstore.MustRegister(featstore.NewSchema("Feature2D.AKAZE").
		Format(3).
		Int("descriptor", 5).
		Int("descriptor_channels", 3).
		Int("descriptor_size", 0).
		Float32("threshold", 0.001).
		Int("octaves", 4).
		Int("sublevels", 4).
		Int("diffusivity", 1).
		MustBuild())

	BEBLIDSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.BEBLID").
		Float32("scale_factor", 6.75).
		Int("n_bits", 100).
		MustBuild())

	BRIEFSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.BRIEF").
		Int("descriptorSize", 32).
		Bool("use_orientation", false).
		MustBuild())

	BRISKSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.BRISK").
		Int("threshold", 30).
		Int("octaves", 3).
		Float32("patternScale", 1).
		MustBuild())

	FREAKSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.FREAK").
		Bool("orientationNormalized", true).
		Bool("scaleNormalized", true).
		Float32("patternScale", 22).
		Int("nOctaves", 4).
		MustBuild())

	HarrisLaplaceSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.HARRIS-LAPLACE").
		Int("numOctaves", 6).
		Float32("corn_thresh", 0.01).
		Float32("DOG_thresh", 0.01).
		Int("maxCorners", 5000).
		Int("num_layers", 4).
		MustBuild())

	LATCHSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.LATCH").
		Int("descriptorSize", 32).
		Bool("rotationInvariance", true).
		Int("half_ssd_size", 3).
		Float64("sigma", 2).
		MustBuild())

	MSDSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.MSD").
		Int("patch_radius", 3).
		Int("search_area_radius", 5).
		Int("nms_radius", 5).
		Int("nms_scale_radius", 0).
		Float32("th_saliency", 250).
		Int("kNN", 4).
		Float32("scale_factor", 1.25).
		Int("n_scales", -1).
		Bool("compute_orientation", false).
		MustBuild())

	MSERSchema = featstore.MustRegister(featstore.NewSchema("Feature2D.MSER").
		Int("delta", 5).
		Int("minArea", 60).
		Int("maxArea", 14400).
		Float64("maxVariation", .25).
		Float64("minDiversity", .2).
		Int("maxEvolution", 200).
		Float64("areaThreshold", 1.01).
		Float64("minMargin", .003).
		Int("edgeBlurSize", 5).
		Bool("pass2Only", false).
		MustBuild())
)
