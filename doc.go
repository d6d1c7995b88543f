// Package sdfgen converts the alpha mask of an image into a signed
// distance field (SDF).
//
// # Overview
//
// A pixel is inside the shape when its alpha exceeds [AlphaThreshold].
// For every pixel the exact Euclidean distance to the nearest pixel of
// the opposite class is computed; inside pixels get the negated distance
// to the nearest outside pixel, outside pixels the distance to the
// nearest inside pixel. The field is clamped to ±[MaxDistance] pixels and
// quantized to 8 bits, so 128 marks the shape boundary, darker values are
// inside and brighter values are outside.
//
// # Quick Start
//
//	res, err := sdfgen.Generate("icon.png") // writes icon_sdf.png
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.OutputPath, res.Min, res.Max)
//
// The in-memory pipeline is available as [GenerateImage], and the
// individual stages as [NewMaskFromAlpha], [NewSignedField] and
// [Field.Quantize].
//
// # Edge Cases
//
// Images without an alpha channel are fully opaque, so the whole image is
// inside and every output pixel is 0. A fully transparent image produces
// 255 everywhere. When a distance transform has no target pixel at all,
// every distance is the image diagonal, raised to [MaxDistance] for small
// images so that degenerate masks always saturate.
//
// # Input Formats
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are decoded; SVG documents are
// rasterized at their viewBox size first.
package sdfgen
