package chart

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/alnah/go-pitchdeck/internal/dataset"
	"github.com/alnah/go-pitchdeck/internal/fileutil"
)

// Output file names inside the chart directory.
const (
	ROIFile   = "roi_chart_light.png"
	RadarFile = "risk_radar_light.png"
)

// Data is what RenderAll plots.
type Data struct {
	Series    dataset.FinancialSeries
	BreakEven int
	Risks     []dataset.RiskScore
}

// Files are the paths RenderAll wrote.
type Files struct {
	ROI   string
	Radar string
}

// RenderAll writes both charts into dir, creating it if needed. Each file is
// replaced atomically; a failure leaves any previous chart untouched and
// stops before the next one.
func (r *Renderer) RenderAll(ctx context.Context, data Data, dir string) (Files, error) {
	files := Files{
		ROI:   filepath.Join(dir, ROIFile),
		Radar: filepath.Join(dir, RadarFile),
	}

	jobs := []struct {
		path  string
		paint func(io.Writer) error
	}{
		{files.ROI, func(w io.Writer) error { return r.Line(w, data.Series, data.BreakEven) }},
		{files.Radar, func(w io.Writer) error { return r.Radar(w, data.Risks) }},
	}
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return Files{}, err
		}
		if err := fileutil.WriteAtomicFunc(job.path, job.paint); err != nil {
			if isPaintError(err) {
				return Files{}, fmt.Errorf("%s: %w", job.path, err)
			}
			return Files{}, fmt.Errorf("%w: %s: %w", ErrWrite, job.path, err)
		}
	}
	return files, nil
}

func isPaintError(err error) bool {
	return errors.Is(err, ErrEncode) || errors.Is(err, ErrInvalidInput)
}
