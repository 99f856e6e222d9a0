package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 200, A: 255})

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))
	return path
}

func TestLoadLogo(t *testing.T) {
	logo, err := LoadLogo(writePNG(t, 30, 15))
	require.NoError(t, err)

	assert.True(t, logo.Present())
	assert.Equal(t, "image/png", logo.ContentType)
	assert.Equal(t, 30, logo.Width)
	assert.Equal(t, 15, logo.Height)
}

func TestLoadLogoFailuresReturnEmptyLogo(t *testing.T) {
	logo, err := LoadLogo(filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, logo.Present())

	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))
	logo, err = LoadLogo(path)
	require.Error(t, err)
	assert.False(t, logo.Present())

	logo, err = LoadLogo("")
	require.Error(t, err)
	assert.False(t, logo.Present())
}
