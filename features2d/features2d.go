// Package features2d declares the parameter catalogues of the feature
// detectors and descriptor extractors, and wraps each in a typed binding.
//
// The wrappers only hold configuration. Detection and description run in an
// external backend reached through the Detector and Extractor interfaces.
package features2d

import (
	"image"

	featstore "github.com/reoring/featstore"
	"github.com/reoring/featstore/binding"
)

// KeyPoint is a salient point reported by a Detector.
type KeyPoint struct {
	X, Y     float64
	Size     float64
	Angle    float64 // degrees, -1 when not computed
	Response float64
	Octave   int
	ClassID  int
}

// Detector finds keypoints in an image.
type Detector interface {
	Detect(img image.Image) ([]KeyPoint, error)
}

// Extractor computes one descriptor per keypoint. It may drop keypoints it
// cannot describe; the returned slices are parallel.
type Extractor interface {
	Compute(img image.Image, kps []KeyPoint) ([]KeyPoint, [][]byte, error)
}

// Configured is implemented by every typed wrapper in this package.
type Configured interface {
	Schema() *featstore.Schema
	Snapshot() featstore.Document
}

func create[T any](s *featstore.Schema, wrap func(*binding.Binding) T, opts []binding.Option) (T, error) {
	b, err := binding.Create(s, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return wrap(b), nil
}

func setInt(b *binding.Binding, name string, v int) error {
	return b.Set(name, featstore.Int(int64(v)))
}

func setFloat(b *binding.Binding, name string, v float64) error {
	return b.Set(name, featstore.Float(v))
}

func setBool(b *binding.Binding, name string, v bool) error {
	return b.Set(name, featstore.Bool(v))
}
