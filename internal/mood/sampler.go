package mood

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	// DefaultSampleCount is the number of pixels sampled when none is requested.
	DefaultSampleCount = 100

	// MaxSampleDimension bounds the longer side of the image before sampling.
	MaxSampleDimension = 200
)

var (
	// ErrImageLoad is returned when the uploaded image cannot be decoded.
	ErrImageLoad = errors.New("image could not be loaded")

	// ErrEnvironment is returned when the decoded image has no readable pixels.
	ErrEnvironment = errors.New("image pixels are not readable")
)

// DecodeImage decodes an image stream, applying EXIF orientation.
func DecodeImage(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageLoad, err)
	}
	return img, nil
}

// Downscale fits the image into MaxSampleDimension x MaxSampleDimension.
// Smaller images are copied unchanged.
func Downscale(img image.Image) *image.NRGBA {
	return imaging.Fit(img, MaxSampleDimension, MaxSampleDimension, imaging.Box)
}

// SampleImage decodes r and samples roughly sampleCount pixels on an even grid.
func SampleImage(r io.Reader, sampleCount int) ([]RGB, error) {
	img, err := DecodeImage(r)
	if err != nil {
		return nil, err
	}
	return SamplePixels(Downscale(img), sampleCount)
}

// SamplePixels samples an already downscaled image on a grid whose spacing is
// floor(sqrt(width*height/sampleCount)), starting at the top-left pixel.
func SamplePixels(img *image.NRGBA, sampleCount int) ([]RGB, error) {
	if img == nil {
		return nil, ErrEnvironment
	}
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, ErrEnvironment
	}

	if sampleCount <= 0 {
		sampleCount = DefaultSampleCount
	}

	step := int(math.Floor(math.Sqrt(float64(width*height) / float64(sampleCount))))
	if step < 1 {
		step = 1
	}

	samples := make([]RGB, 0, ((width+step-1)/step)*((height+step-1)/step))
	for y := 0; y < height; y += step {
		for x := 0; x < width; x += step {
			i := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			samples = append(samples, RGB{
				R: img.Pix[i],
				G: img.Pix[i+1],
				B: img.Pix[i+2],
			})
		}
	}

	return samples, nil
}
