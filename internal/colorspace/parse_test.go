package colorspace

import (
	"errors"
	"testing"
)

func TestValidateAndConvert(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format Format
		want   RGBColor
	}{
		{"hex with hash", "#3B82F6", FormatHex, RGBColor{59, 130, 246}},
		{"hex lowercase", "3b82f6", FormatHex, RGBColor{59, 130, 246}},
		{"rgb plain", "59,130,246", FormatRGB, RGBColor{59, 130, 246}},
		{"rgb spaced", "59, 130 ,  246", FormatRGB, RGBColor{59, 130, 246}},
		{"rgb css wrapper", "rgb(59, 130, 246)", FormatRGB, RGBColor{59, 130, 246}},
		{"rgb trailing text", "0,0,0 is black", FormatRGB, RGBColor{0, 0, 0}},
		{"rgb bounds", "0, 255, 0", FormatRGB, RGBColor{0, 255, 0}},
		{"ycbcr black", "16,128,128", FormatYCbCr, RGBColor{0, 0, 0}},
		{"ycbcr white", "235, 128, 128", FormatYCbCr, RGBColor{255, 255, 255}},
		{"ycbcr chroma bounds", "235,240,240", FormatYCbCr, RGBColor{255, 120, 255}},
		{"ycbcr wrapped", "YCbCr(122, 198, 83)", FormatYCbCr, RGBColor{52, 133, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateAndConvert(tt.raw, tt.format)
			if err != nil {
				t.Fatalf("ValidateAndConvert(%q, %s) failed: %v", tt.raw, tt.format, err)
			}
			if got != tt.want {
				t.Errorf("ValidateAndConvert(%q, %s) = %v, want %v", tt.raw, tt.format, got, tt.want)
			}
		})
	}
}

func TestValidateAndConvert_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		format Format
	}{
		{"hex five digits", "3B82F", FormatHex},
		{"hex embedded", "color: #3B82F6", FormatHex},
		{"hex given to rgb", "#3B82F6", FormatRGB},
		{"rgb out of byte range", "999,999,999", FormatRGB},
		{"rgb one channel over", "0,256,0", FormatRGB},
		{"rgb two values", "10, 20", FormatRGB},
		{"rgb huge number", "99999999999999999999999,0,0", FormatRGB},
		{"rgb empty", "", FormatRGB},
		{"ycbcr luma below 16", "15,128,128", FormatYCbCr},
		{"ycbcr luma above 235", "236,128,128", FormatYCbCr},
		{"ycbcr cb below 16", "100,15,128", FormatYCbCr},
		{"ycbcr cr above 240", "100,128,241", FormatYCbCr},
		{"ycbcr words", "bright blue", FormatYCbCr},
		{"unknown format", "1,2,3", Format("hsl")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndConvert(tt.raw, tt.format)
			if err == nil {
				t.Fatalf("ValidateAndConvert(%q, %s) should be rejected", tt.raw, tt.format)
			}
			if !errors.Is(err, ErrInputRejected) {
				t.Errorf("error %v does not wrap ErrInputRejected", err)
			}
		})
	}
}

func TestParser_Strict(t *testing.T) {
	strict := Parser{Strict: true}

	accepted := []struct {
		raw    string
		format Format
	}{
		{"59,130,246", FormatRGB},
		{"  59 , 130 , 246  ", FormatRGB},
		{"16,128,128", FormatYCbCr},
		{"#3B82F6", FormatHex},
	}
	for _, tt := range accepted {
		if _, err := strict.ValidateAndConvert(tt.raw, tt.format); err != nil {
			t.Errorf("strict %s %q rejected: %v", tt.format, tt.raw, err)
		}
	}

	rejected := []struct {
		raw    string
		format Format
	}{
		{"rgb(59, 130, 246)", FormatRGB},
		{"0,0,0 is black", FormatRGB},
		{"-5,1,1", FormatRGB},
		{"YCbCr(16,128,128)", FormatYCbCr},
	}
	for _, tt := range rejected {
		if _, err := strict.ValidateAndConvert(tt.raw, tt.format); !errors.Is(err, ErrInputRejected) {
			t.Errorf("strict %s %q: got err %v, want ErrInputRejected", tt.format, tt.raw, err)
		}
	}
}

func TestParser_ScanIgnoresSign(t *testing.T) {
	// The scanning parser finds the digits after '-', so "-5" reads as 5.
	got, err := ValidateAndConvert("-5,1,1", FormatRGB)
	if err != nil {
		t.Fatalf("scan parser rejected %q: %v", "-5,1,1", err)
	}
	if got != (RGBColor{5, 1, 1}) {
		t.Errorf("got %v, want 5, 1, 1", got)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"hex", FormatHex, false},
		{"RGB", FormatRGB, false},
		{" YCbCr ", FormatYCbCr, false},
		{"hsl", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveDisplay(t *testing.T) {
	d := DeriveDisplay(RGBColor{59, 130, 246})

	if d.Hex != "#3B82F6" {
		t.Errorf("Hex: got %s, want #3B82F6", d.Hex)
	}
	if d.RGB != (RGBColor{59, 130, 246}) {
		t.Errorf("RGB: got %v", d.RGB)
	}
	if d.YCbCr != (YCbCrColor{122, 198, 83}) {
		t.Errorf("YCbCr: got %v, want 122, 198, 83", d.YCbCr)
	}
}

func TestDeriveDisplay_FromEveryFormatAgrees(t *testing.T) {
	for _, f := range Formats {
		var raw string
		switch f {
		case FormatHex:
			raw = "#000000"
		case FormatRGB:
			raw = "0,0,0"
		case FormatYCbCr:
			raw = "16,128,128"
		}
		c, err := ValidateAndConvert(raw, f)
		if err != nil {
			t.Fatalf("%s %q: %v", f, raw, err)
		}
		d := DeriveDisplay(c)
		if d.Hex != "#000000" || d.YCbCr != (YCbCrColor{16, 128, 128}) {
			t.Errorf("%s: display %+v, want black", f, d)
		}
	}
}
