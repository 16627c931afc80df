package assets

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEmbeddedImages(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"sky", 800, 600},
		{"platform", 400, 32},
		{"diamond", 32, 28},
		{"dude", 128, 32}, // four 32x32 frames
		{"assets/dude.png", 128, 32},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			img, err := Decode(c.name)
			require.NoError(t, err)
			assert.Equal(t, c.w, img.Bounds().Dx())
			assert.Equal(t, c.h, img.Bounds().Dy())
		})
	}
}

func TestDecodeUnknown(t *testing.T) {
	_, err := Decode("star")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAsset))

	_, err = Decode("missing.png")
	assert.True(t, errors.Is(err, ErrUnknownAsset))
}

type failingSource struct{ bad string }

func (f failingSource) Image(name string) (*ebiten.Image, error) {
	if name == f.bad {
		return nil, ErrUnknownAsset
	}
	return nil, nil
}

func TestPreloadStopsAtFirstFailure(t *testing.T) {
	err := Preload(failingSource{bad: "diamond"}, "sky", "diamond", "dude")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `preload "diamond"`)
	assert.NoError(t, Preload(failingSource{}, "sky"))
}
