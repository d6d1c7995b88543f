package sdfgen

import "errors"

// Pipeline errors. Every error returned by Generate wraps exactly one of
// these, so callers can classify failures with errors.Is.
var (
	// ErrInputNotFound is returned when the input path cannot be opened.
	ErrInputNotFound = errors.New("sdfgen: file not found")

	// ErrDecode is returned when the input exists but is not a decodable image.
	ErrDecode = errors.New("sdfgen: error loading image")

	// ErrEncode is returned when the output image cannot be encoded or written.
	ErrEncode = errors.New("sdfgen: error writing image")
)
