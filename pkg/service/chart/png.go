package chart

import (
	"bytes"
	"math"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	// DefaultWidth and DefaultHeight are the PNG dimensions in pixels
	DefaultWidth  = 512
	DefaultHeight = 512

	// emptyLabel is drawn when a question has no responses yet
	emptyLabel = "No responses"
)

var emptyColor = drawing.Color{R: 201, G: 203, B: 207, A: 255}

func toColor(c model.RGBA) drawing.Color {
	alpha := math.Round(math.Max(0, math.Min(1, c.A)) * 255)
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(alpha)}
}

// Values converts the counts of spec into donut slices. Zero counts are
// skipped since a zero-width slice cannot be drawn; a question without
// any response becomes a single placeholder slice.
func Values(spec model.ChartSpec) []gochart.Value {
	values := make([]gochart.Value, 0, len(spec.Data))
	for i, count := range spec.Data {
		if count <= 0 {
			continue
		}
		values = append(values, gochart.Value{
			Label: spec.LabelAt(i),
			Value: float64(count),
			Style: gochart.Style{
				FillColor:   toColor(spec.Style.BackgroundAt(i)),
				StrokeColor: toColor(spec.Style.BorderAt(i)),
				StrokeWidth: spec.Style.BorderWidth,
			},
		})
	}

	if len(values) == 0 {
		values = append(values, gochart.Value{
			Label: emptyLabel,
			Value: 1,
			Style: gochart.Style{
				FillColor:   emptyColor,
				StrokeColor: emptyColor,
				StrokeWidth: spec.Style.BorderWidth,
			},
		})
	}
	return values
}

// EncodePNG draws spec as a doughnut chart and returns the PNG bytes
func EncodePNG(spec model.ChartSpec, width, height int) ([]byte, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	pad := spec.Style.TitlePadding
	donut := gochart.DonutChart{
		Title: spec.Title,
		TitleStyle: gochart.Style{
			FontSize: spec.Style.TitleFontSize,
			Padding:  gochart.Box{Top: pad, Bottom: pad},
		},
		Width:  width,
		Height: height,
		Values: Values(spec),
	}

	var buf bytes.Buffer
	if err := donut.Render(gochart.PNG, &buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render chart",
			goerr.V("chart_id", spec.ID),
			goerr.V("title", spec.Title),
		)
	}
	return buf.Bytes(), nil
}
