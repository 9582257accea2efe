package core

import (
	"image/color"
	"testing"
)

func TestColorRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.RGBA
	}{
		{ColorRed, color.RGBA{0xe0, 0x40, 0x40, 0xff}},
		{ColorOrange, color.RGBA{0xff, 0x87, 0x00, 0xff}},
		{Color(250), rgba[ColorDefault]},
	}
	for _, tt := range tests {
		if got := tt.c.RGBA(); got != tt.want {
			t.Errorf("Color(%d).RGBA() = %v, expected %v", tt.c, got, tt.want)
		}
	}
}

func TestColorsOpaque(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		if c.RGBA().A != 0xff {
			t.Errorf("Color(%d) is not opaque", c)
		}
	}
}
