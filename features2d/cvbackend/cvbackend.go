//go:build gocv

// Package cvbackend runs detection and description through OpenCV via gocv.
//
// gocv constructs AKAZE, BRISK and MSER with their library defaults only, so
// the adapters accept a configuration only while it still equals the schema
// defaults. Build with -tags gocv.
package cvbackend

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/reoring/featstore/features2d"
)

// ErrUnsupportedParams is returned when a configuration differs from the
// defaults gocv is able to construct.
var ErrUnsupportedParams = errors.New("cvbackend: parameters differ from library defaults")

var (
	_ features2d.Detector  = (*AKAZE)(nil)
	_ features2d.Extractor = (*AKAZE)(nil)
	_ features2d.Detector  = (*BRISK)(nil)
	_ features2d.Extractor = (*BRISK)(nil)
	_ features2d.Detector  = (*MSER)(nil)
)

func checkDefaults(c features2d.Configured) error {
	if diff := c.Snapshot().Diff(c.Schema().Defaults()); len(diff) > 0 {
		return fmt.Errorf("%w: %s: %v", ErrUnsupportedParams, c.Schema().Name(), diff)
	}
	return nil
}

// AKAZE detects and describes keypoints with gocv's AKAZE.
type AKAZE struct{}

// NewAKAZE validates cfg and returns the adapter.
func NewAKAZE(cfg *features2d.AKAZE) (*AKAZE, error) {
	if err := checkDefaults(cfg); err != nil {
		return nil, err
	}
	return &AKAZE{}, nil
}

func (a *AKAZE) Detect(img image.Image) ([]features2d.KeyPoint, error) {
	return withGray(img, func(m gocv.Mat) ([]features2d.KeyPoint, error) {
		alg := gocv.NewAKAZE()
		defer alg.Close()
		return fromCV(alg.Detect(m)), nil
	})
}

func (a *AKAZE) Compute(img image.Image, kps []features2d.KeyPoint) ([]features2d.KeyPoint, [][]byte, error) {
	var desc [][]byte
	out, err := withGray(img, func(m gocv.Mat) ([]features2d.KeyPoint, error) {
		alg := gocv.NewAKAZE()
		defer alg.Close()
		mask := gocv.NewMat()
		defer mask.Close()
		got, d := alg.Compute(m, mask, toCV(kps))
		defer d.Close()
		desc = rows(d)
		return fromCV(got), nil
	})
	return out, desc, err
}

// BRISK detects and describes keypoints with gocv's BRISK.
type BRISK struct{}

// NewBRISK validates cfg and returns the adapter.
func NewBRISK(cfg *features2d.BRISK) (*BRISK, error) {
	if err := checkDefaults(cfg); err != nil {
		return nil, err
	}
	return &BRISK{}, nil
}

func (b *BRISK) Detect(img image.Image) ([]features2d.KeyPoint, error) {
	return withGray(img, func(m gocv.Mat) ([]features2d.KeyPoint, error) {
		alg := gocv.NewBRISK()
		defer alg.Close()
		return fromCV(alg.Detect(m)), nil
	})
}

func (b *BRISK) Compute(img image.Image, kps []features2d.KeyPoint) ([]features2d.KeyPoint, [][]byte, error) {
	var desc [][]byte
	out, err := withGray(img, func(m gocv.Mat) ([]features2d.KeyPoint, error) {
		alg := gocv.NewBRISK()
		defer alg.Close()
		mask := gocv.NewMat()
		defer mask.Close()
		got, d := alg.Compute(m, mask, toCV(kps))
		defer d.Close()
		desc = rows(d)
		return fromCV(got), nil
	})
	return out, desc, err
}

// MSER detects regions with gocv's MSER and reports them as keypoints.
type MSER struct{}

// NewMSER validates cfg and returns the adapter.
func NewMSER(cfg *features2d.MSER) (*MSER, error) {
	if err := checkDefaults(cfg); err != nil {
		return nil, err
	}
	return &MSER{}, nil
}

func (d *MSER) Detect(img image.Image) ([]features2d.KeyPoint, error) {
	return withGray(img, func(m gocv.Mat) ([]features2d.KeyPoint, error) {
		alg := gocv.NewMSER()
		defer alg.Close()
		return fromCV(alg.Detect(m)), nil
	})
}

func withGray(img image.Image, fn func(gocv.Mat) ([]features2d.KeyPoint, error)) ([]features2d.KeyPoint, error) {
	rgb, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("cvbackend: convert image: %w", err)
	}
	defer rgb.Close()
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(rgb, &gray, gocv.ColorRGBToGray)
	return fn(gray)
}

func fromCV(kps []gocv.KeyPoint) []features2d.KeyPoint {
	out := make([]features2d.KeyPoint, len(kps))
	for i, k := range kps {
		out[i] = features2d.KeyPoint{X: k.X, Y: k.Y, Size: k.Size, Angle: k.Angle,
			Response: k.Response, Octave: k.Octave, ClassID: k.ClassID}
	}
	return out
}

func toCV(kps []features2d.KeyPoint) []gocv.KeyPoint {
	out := make([]gocv.KeyPoint, len(kps))
	for i, k := range kps {
		out[i] = gocv.KeyPoint{X: k.X, Y: k.Y, Size: k.Size, Angle: k.Angle,
			Response: k.Response, Octave: k.Octave, ClassID: k.ClassID}
	}
	return out
}

func rows(m gocv.Mat) [][]byte {
	out := make([][]byte, m.Rows())
	for r := range out {
		row := make([]byte, m.Cols())
		for c := range row {
			row[c] = m.GetUCharAt(r, c)
		}
		out[r] = row
	}
	return out
}
