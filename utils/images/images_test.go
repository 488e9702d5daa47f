package images

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func TestStampJPEG(t *testing.T) {
	// SOI followed by quantization table, no APP0
	bare := []byte{0xFF, 0xD8, 0xFF, 0xDB, 0x00, 0x04}

	out, err := StampJPEG(bare, DensityPerInch, 300)
	if err != nil {
		t.Fatalf("StampJPEG() error = %v", err)
	}
	if len(out) != len(bare)+18 {
		t.Fatalf("len = %d, want %d", len(out), len(bare)+18)
	}
	if !bytes.Equal(out[2:4], []byte{0xFF, 0xE0}) || string(out[6:10]) != "JFIF" {
		t.Fatal("JFIF APP0 segment not inserted after SOI")
	}
	if !bytes.Equal(out[18:], bare[2:]) {
		t.Error("original segments not preserved")
	}
	if d := binary.BigEndian.Uint16(out[14:16]); d != 300 {
		t.Errorf("x density = %d, want 300", d)
	}

	again, err := StampJPEG(out, DensityPerCm, 118)
	if err != nil {
		t.Fatalf("StampJPEG() error = %v", err)
	}
	if len(again) != len(out) {
		t.Fatal("existing JFIF segment must be updated, not duplicated")
	}
	if DensityUnit(again[13]) != DensityPerCm || binary.BigEndian.Uint16(again[16:18]) != 118 {
		t.Error("density not updated")
	}
	if DensityUnit(out[13]) != DensityPerInch {
		t.Error("input modified")
	}
}

func TestStampJPEG_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		dpi  int
	}{
		{"short", []byte{0xFF}, 300},
		{"png", []byte{0x89, 'P', 'N', 'G'}, 300},
		{"zero density", []byte{0xFF, 0xD8, 0xFF, 0xDB}, 0},
		{"huge density", []byte{0xFF, 0xD8, 0xFF, 0xDB}, 70000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := StampJPEG(tt.data, DensityPerInch, tt.dpi); err == nil {
				t.Error("StampJPEG() expected error")
			}
		})
	}
}

func testImage() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for x := range 8 {
		img.Set(x, 1, color.NRGBA{R: 255, A: 255})
	}
	return img
}

func TestEncodeJPEGWithDPI(t *testing.T) {
	data, err := EncodeJPEGWithDPI(testImage(), 90, 600)
	if err != nil {
		t.Fatalf("EncodeJPEGWithDPI() error = %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("result is not a jpeg: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Errorf("width = %d, want 8", img.Bounds().Dx())
	}
	if DensityUnit(data[13]) != DensityPerInch || binary.BigEndian.Uint16(data[16:18]) != 600 {
		t.Error("density not stamped")
	}
}

func TestEncodePNGWithDPI(t *testing.T) {
	data, err := EncodePNGWithDPI(testImage(), 300)
	if err != nil {
		t.Fatalf("EncodePNGWithDPI() error = %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("result is not a valid png: %v", err)
	}
	i := bytes.Index(data, []byte("pHYs"))
	if i != 37 {
		t.Fatalf("pHYs chunk at %d, want right after IHDR", i)
	}
	if ppm := binary.BigEndian.Uint32(data[i+4:]); ppm != 11811 {
		t.Errorf("pixels per meter = %d, want 11811", ppm)
	}

	again, added, err := EnsurePNGPhys(data, 72)
	if err != nil || added || !bytes.Equal(again, data) {
		t.Errorf("existing pHYs must be kept, got added=%v err=%v", added, err)
	}
	if _, _, err := EnsurePNGPhys([]byte("GIF89a"), 72); err == nil {
		t.Error("expected error for non png data")
	}
}

func TestGrayscale(t *testing.T) {
	if IsGrayscale(testImage()) {
		t.Error("red pixels are not grayscale")
	}
	gray := image.NewNRGBA(image.Rect(2, 2, 6, 6))
	for x := 2; x < 6; x++ {
		gray.Set(x, 3, color.NRGBA{R: 90, G: 90, B: 90, A: 255})
	}
	if !IsGrayscale(gray) {
		t.Error("expected grayscale")
	}
	g := ToGray(gray)
	if g.Bounds() != image.Rect(0, 0, 4, 4) {
		t.Errorf("ToGray() bounds = %v, want origin based", g.Bounds())
	}
	if g.GrayAt(1, 1).Y != 90 {
		t.Errorf("ToGray() pixel = %d, want 90", g.GrayAt(1, 1).Y)
	}
	if ToGray(g) != g {
		t.Error("ToGray() must return gray image as is")
	}
}
