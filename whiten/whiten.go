// Package whiten recolors every visible pixel of an image to white while
// keeping its alpha, turning a colored sprite into a tintable silhouette.
package whiten

import (
	"fmt"
	"image"

	"github.com/gogpu/sdfgen"
	"github.com/gogpu/sdfgen/internal/imageio"
)

// Image returns a copy of img in which every pixel with non-zero alpha is
// white with its original alpha. Fully transparent pixels keep their color
// channels.
func Image(img image.Image) *image.NRGBA {
	dst := imageio.ToNRGBA(img)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i+3] > 0 {
			dst.Pix[i+0] = 255
			dst.Pix[i+1] = 255
			dst.Pix[i+2] = 255
		}
	}
	return dst
}

// File whitens the image at input and writes the result as PNG to output.
func File(input, output string) error {
	img, err := imageio.Load(input)
	if err != nil {
		return fmt.Errorf("whiten: %s: %w", input, err)
	}
	if err := imageio.SavePNG(output, Image(img)); err != nil {
		return fmt.Errorf("whiten: %s: %w", output, err)
	}
	sdfgen.Logger().Info("whiten: wrote", "path", output)
	return nil
}
