package model

import (
	"fmt"

	"github.com/secmon-lab/surveyor/pkg/domain/types"
)

// RGBA is a color with an alpha channel in [0, 1]
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// CSS returns the color as a CSS rgba() value
func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// ChartStyle is the fixed styling handed to chart sinks
type ChartStyle struct {
	Kind             string  `json:"kind"`
	DatasetLabel     string  `json:"dataset_label"`
	BackgroundColors []RGBA  `json:"background_colors"`
	BorderColors     []RGBA  `json:"border_colors"`
	BorderWidth      float64 `json:"border_width"`
	TitleFontSize    float64 `json:"title_font_size"`
	TitlePadding     int     `json:"title_padding"`
}

// Clone returns a copy that shares no palette with s
func (s ChartStyle) Clone() ChartStyle {
	c := s
	c.BackgroundColors = append([]RGBA(nil), s.BackgroundColors...)
	c.BorderColors = append([]RGBA(nil), s.BorderColors...)
	return c
}

// BackgroundAt returns the fill color for the i-th slice, cycling the palette
func (s ChartStyle) BackgroundAt(i int) RGBA {
	if len(s.BackgroundColors) == 0 {
		return RGBA{A: 1}
	}
	return s.BackgroundColors[i%len(s.BackgroundColors)]
}

// BorderAt returns the border color for the i-th slice, cycling the palette
func (s ChartStyle) BorderAt(i int) RGBA {
	if len(s.BorderColors) == 0 {
		return RGBA{A: 1}
	}
	return s.BorderColors[i%len(s.BorderColors)]
}

// DefaultChartStyle is the doughnut styling used for every question chart
var DefaultChartStyle = ChartStyle{
	Kind:         "doughnut",
	DatasetLabel: "# of People",
	BackgroundColors: []RGBA{
		{R: 255, G: 99, B: 132, A: 0.2},
		{R: 54, G: 162, B: 235, A: 0.2},
		{R: 255, G: 206, B: 86, A: 0.2},
		{R: 75, G: 192, B: 192, A: 0.2},
		{R: 153, G: 102, B: 255, A: 0.2},
		{R: 255, G: 159, B: 64, A: 0.2},
	},
	BorderColors: []RGBA{
		{R: 255, G: 99, B: 132, A: 1},
		{R: 54, G: 162, B: 235, A: 1},
		{R: 255, G: 206, B: 86, A: 1},
		{R: 75, G: 192, B: 192, A: 1},
		{R: 153, G: 102, B: 255, A: 1},
		{R: 255, G: 159, B: 64, A: 1},
	},
	BorderWidth:   1,
	TitleFontSize: 24,
	TitlePadding:  12,
}

// ChartSpec is everything a sink needs to draw one question chart
type ChartSpec struct {
	ID     types.ChartID `json:"id"`
	Title  string        `json:"title"`
	Labels []string      `json:"labels"`
	Data   []int         `json:"data"`
	Style  ChartStyle    `json:"style"`
}

// Total returns the sum of all counts
func (c *ChartSpec) Total() int {
	total := 0
	for _, v := range c.Data {
		total += v
	}
	return total
}

// LabelAt returns the label of the i-th count, or a positional fallback
func (c *ChartSpec) LabelAt(i int) string {
	if i < len(c.Labels) {
		return c.Labels[i]
	}
	return fmt.Sprintf("Option %d", i+1)
}
