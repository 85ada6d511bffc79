package render

import (
	"context"
	"reflect"
	"testing"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in      string
		want    []Format
		wantErr bool
	}{
		{"", []Format{FormatSVG}, false},
		{"svg", []Format{FormatSVG}, false},
		{"SVG, png,pdf", []Format{FormatSVG, FormatPNG, FormatPDF}, false},
		{"json,json,dot", []Format{FormatJSON, FormatDOT}, false},
		{"svg,,png", []Format{FormatSVG, FormatPNG}, false},
		{"gif", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormats(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Errorf("code = %s, want INVALID_FORMAT", errors.GetCode(err))
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatMetadata(t *testing.T) {
	if FormatSVG.ContentType() != "image/svg+xml" {
		t.Errorf("svg content type = %q", FormatSVG.ContentType())
	}
	if FormatPNG.Ext() != ".png" {
		t.Errorf("png ext = %q", FormatPNG.Ext())
	}
	if !FormatPDF.NeedsConverter() || FormatJSON.NeedsConverter() {
		t.Error("only png and pdf need the converter")
	}
}

func TestConvertWithoutRsvg(t *testing.T) {
	old := rsvgConvert
	rsvgConvert = "hemicycle-missing-rsvg-convert"
	defer func() { rsvgConvert = old }()

	_, err := ToPDF(context.Background(), []byte("<svg/>"))
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("ToPDF err = %v, want UNSUPPORTED", err)
	}
	if CanConvert() {
		t.Error("CanConvert should be false for a missing binary")
	}
}
