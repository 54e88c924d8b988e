//go:build gocv

package cvbackend

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reoring/featstore/features2d"
)

func TestNewAKAZE_RejectsTunedParameters(t *testing.T) {
	cfg, err := features2d.NewAKAZE()
	require.NoError(t, err)
	require.NoError(t, cfg.SetThreshold(0.002))

	_, err = NewAKAZE(cfg)
	require.ErrorIs(t, err, ErrUnsupportedParams)
}

func TestBRISK_DetectOnCheckerboard(t *testing.T) {
	cfg, err := features2d.NewBRISK()
	require.NoError(t, err)
	det, err := NewBRISK(cfg)
	require.NoError(t, err)

	img := image.NewGray(image.Rect(0, 0, 128, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 128; x++ {
			if (x/16+y/16)%2 == 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}
	kps, err := det.Detect(img)
	require.NoError(t, err)
	require.NotEmpty(t, kps)

	kept, desc, err := det.Compute(img, kps)
	require.NoError(t, err)
	require.Len(t, desc, len(kept))
}
