package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

const textBarWidth = 20

// TextSink prints charts as horizontal bars
type TextSink struct {
	out io.Writer
}

var _ interfaces.ChartSink = (*TextSink)(nil)

// NewTextSink creates a TextSink writing to out
func NewTextSink(out io.Writer) *TextSink {
	return &TextSink{out: out}
}

// Render implements interfaces.ChartSink
func (s *TextSink) Render(ctx context.Context, spec model.ChartSpec) error {
	var b strings.Builder
	total := spec.Total()

	fmt.Fprintf(&b, "\n%s (%s: %d)\n", spec.Title, spec.Style.DatasetLabel, total)

	width := 0
	for i := range spec.Data {
		if l := len(spec.LabelAt(i)); l > width {
			width = l
		}
	}
	for i, count := range spec.Data {
		filled := 0
		if total > 0 {
			filled = count * textBarWidth / total
		}
		fmt.Fprintf(&b, "  %-*s %s %d\n", width, spec.LabelAt(i), strings.Repeat("#", filled), count)
	}

	_, err := io.WriteString(s.out, b.String())
	return err
}
