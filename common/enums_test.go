package common

import (
	"errors"
	"testing"
)

func TestCardType_Opposite(t *testing.T) {
	tests := []struct {
		in, want CardType
	}{
		{CardTypeFront, CardTypeBack},
		{CardTypeBack, CardTypeFront},
		{CardTypeUnknown, CardTypeUnknown},
		{CardType(42), CardTypeUnknown},
	}
	for _, tt := range tests {
		if got := tt.in.Opposite(); got != tt.want {
			t.Errorf("%v.Opposite() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseModeType(t *testing.T) {
	tests := []struct {
		in      string
		want    ModeType
		wantErr bool
	}{
		{"simplex", ModeTypeSimplex, false},
		{"Duplex", ModeTypeDuplex, false},
		{"gutter-fold", ModeTypeGutterFold, false},
		{"gutterfold", ModeTypeSimplex, true},
		{"", ModeTypeSimplex, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseModeType(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModeType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidModeType) {
				t.Errorf("ParseModeType(%q) error = %v, want ErrInvalidModeType", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseModeType(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFlipEdge_Text(t *testing.T) {
	for _, e := range FlipEdgeValues() {
		text, err := e.MarshalText()
		if err != nil {
			t.Fatalf("%v.MarshalText() error = %v", e, err)
		}
		var back FlipEdge
		if err := back.UnmarshalText(text); err != nil || back != e {
			t.Errorf("UnmarshalText(%q) = %v, %v, want %v", text, back, err, e)
		}
	}
	if FlipEdge(7).IsValid() {
		t.Error("FlipEdge(7) must not be valid")
	}
	var e FlipEdge
	if err := e.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("UnmarshalText(diagonal) expected error")
	}
}

func TestImageFormat_Ext(t *testing.T) {
	if got := MustParseImageFormat("jpeg").Ext(); got != ".jpg" {
		t.Errorf("jpeg Ext() = %q", got)
	}
	if got := ImageFormatPng.Ext(); got != ".png" {
		t.Errorf("png Ext() = %q", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("Ext() expected panic for unknown format")
		}
	}()
	ImageFormat(9).Ext()
}
