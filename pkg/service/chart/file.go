package chart

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/surveyor/pkg/domain/interfaces"
	"github.com/secmon-lab/surveyor/pkg/domain/model"
)

// FileSink writes each chart as <dir>/<chart id>.png
type FileSink struct {
	dir    string
	width  int
	height int
}

var _ interfaces.ChartSink = (*FileSink)(nil)

// NewFileSink creates a FileSink writing into dir
func NewFileSink(dir string) (*FileSink, error) {
	if dir == "" {
		return nil, goerr.New("chart directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, goerr.Wrap(err, "failed to create chart directory", goerr.V("dir", dir))
	}
	return &FileSink{
		dir:    dir,
		width:  DefaultWidth,
		height: DefaultHeight,
	}, nil
}

// Path returns the file a chart id is written to
func (s *FileSink) Path(spec model.ChartSpec) string {
	return filepath.Join(s.dir, spec.ID.String()+".png")
}

// Render implements interfaces.ChartSink
func (s *FileSink) Render(ctx context.Context, spec model.ChartSpec) error {
	if spec.ID == "" {
		return goerr.New("chart id is empty", goerr.V("title", spec.Title))
	}

	data, err := EncodePNG(spec, s.width, s.height)
	if err != nil {
		return err
	}

	path := s.Path(spec)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write chart", goerr.V("path", path))
	}

	ctxlog.From(ctx).Info("chart written", "chart_id", spec.ID, "path", path)
	return nil
}
