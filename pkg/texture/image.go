package texture

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/nfnt/resize"

	"github.com/caustic-rt/caustic/pkg/core"
)

// ImageTexture maps (u,v) lookups onto a decoded raster image
type ImageTexture struct {
	img    image.Image
	width  int
	height int
}

// NewImageTexture wraps an already decoded image
func NewImageTexture(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	return &ImageTexture{
		img:    img,
		width:  bounds.Dx(),
		height: bounds.Dy(),
	}
}

// LoadImageTexture reads and decodes an image file. Images larger than
// maxDim on either side are downscaled to bound texture memory; pass 0
// to keep the original resolution.
func LoadImageTexture(path string, maxDim uint) (*ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture image %s: %w", path, err)
	}

	bounds := img.Bounds()
	if maxDim > 0 && (bounds.Dx() > int(maxDim) || bounds.Dy() > int(maxDim)) {
		img = resize.Thumbnail(maxDim, maxDim, img, resize.Lanczos3)
	}

	return NewImageTexture(img), nil
}

// Value samples the image at (u,v). V is flipped so v=0 is the bottom
// of the image.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Color {
	if t.height <= 0 {
		// No usable image data; solid cyan flags the problem in renders
		return core.NewColor(0, 1, 1)
	}

	u = core.NewInterval(0, 1).Clamp(u)
	v = 1 - core.NewInterval(0, 1).Clamp(v)

	i := int(u * float64(t.width))
	j := int(v * float64(t.height))
	if i >= t.width {
		i = t.width - 1
	}
	if j >= t.height {
		j = t.height - 1
	}

	bounds := t.img.Bounds()
	r, g, b, _ := t.img.At(bounds.Min.X+i, bounds.Min.Y+j).RGBA()

	const colorScale = 1.0 / 65535.0
	return core.NewColor(float64(r)*colorScale, float64(g)*colorScale, float64(b)*colorScale)
}
