package sdfgen

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo.png", "foo_sdf.png"},
		{"archive/shape.v2.png", "archive/shape.v2_sdf.png"},
		{"icons/star", "icons/star_sdf.png"},
		{"noext", "noext_sdf.png"},
		{"dir.d/shape", "dir.d/shape_sdf.png"},
		{"photo.jpeg", "photo_sdf.png"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			in := filepath.FromSlash(tt.in)
			want := filepath.FromSlash(tt.want)
			if got := OutputPath(in); got != want {
				t.Errorf("OutputPath(%q) = %q, want %q", in, got, want)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "dot.png", shapeImage(5, 5, centerPixel))

	res, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantOut := filepath.Join(dir, "dot_sdf.png")
	if res.OutputPath != wantOut {
		t.Errorf("OutputPath = %q, want %q", res.OutputPath, wantOut)
	}
	if res.InputPath != in {
		t.Errorf("InputPath = %q, want %q", res.InputPath, in)
	}
	if res.Width != 5 || res.Height != 5 {
		t.Errorf("size = %dx%d, want 5x5", res.Width, res.Height)
	}
	if int(res.Min) != -1 || int(res.Max) != 2 {
		t.Errorf("range = [%d, %d], want [-1, 2]", int(res.Min), int(res.Max))
	}

	out := readGray(t, wantOut)
	if out.Bounds() != image.Rect(0, 0, 5, 5) {
		t.Errorf("output bounds = %v, want 5x5", out.Bounds())
	}
	if v := out.GrayAt(2, 2).Y; v != 126 {
		t.Errorf("center = %d, want 126", v)
	}
}

func TestGenerateNoAlpha(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "gray.png", image.NewGray(image.Rect(0, 0, 6, 4)))

	res, err := Generate(in)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	out := readGray(t, res.OutputPath)
	for i, v := range out.Pix {
		if v != 0 {
			t.Fatalf("pixel %d = %d, want 0 for an image without alpha", i, v)
		}
	}
}

func TestGenerateInputNotFound(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.png")

	res, err := Generate(in)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Generate() error = %v, want ErrInputNotFound", err)
	}
	if res != nil {
		t.Errorf("Generate() result = %+v, want nil", res)
	}
	if exists(OutputPath(in)) {
		t.Error("output file created for missing input")
	}
}

func TestGenerateDecodeError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(in, []byte("\x89PNG\r\n\x1a\ngarbage"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(in)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("Generate() error = %v, want ErrDecode", err)
	}
	if exists(OutputPath(in)) {
		t.Error("output file created for undecodable input")
	}
}

func TestGenerateEncodeError(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, "dot.png", shapeImage(5, 5, centerPixel))
	// Occupy the output name with a directory.
	if err := os.Mkdir(OutputPath(in), 0o755); err != nil {
		t.Fatal(err)
	}

	_, err := Generate(in)
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("Generate() error = %v, want ErrEncode", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("directory holds %d entries, want input and blocking directory only", len(entries))
	}
}
