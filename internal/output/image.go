package output

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/daryltucker/solver-radar/internal/chart"
)

// ErrNoData is returned when a plot has no series to draw.
var ErrNoData = errors.New("chart has no datasets")

// RenderImage draws a category profile of rd: one line per solver
// configuration over the category axis, the static counterpart of the
// radar plot. format is "svg" or "png".
func RenderImage(w io.Writer, rd chart.RadarData, format string, width, height int) error {
	if len(rd.Datasets) == 0 || len(rd.Labels) == 0 {
		return ErrNoData
	}

	renderer, err := rendererFor(format)
	if err != nil {
		return err
	}

	ticks := make([]gochart.Tick, len(rd.Labels))
	xs := make([]float64, len(rd.Labels))
	for i, label := range rd.Labels {
		xs[i] = float64(i)
		ticks[i] = gochart.Tick{Value: float64(i), Label: label}
	}

	maxY := float64(rd.SuggestedMax)
	series := make([]gochart.Series, 0, len(rd.Datasets))
	for i, ds := range rd.Datasets {
		ys := make([]float64, len(rd.Labels))
		for j := range ys {
			if j >= len(ds.Data) {
				continue
			}
			v := float64(ds.Data[j])
			ys[j] = v
			if v > maxY {
				maxY = v
			}
		}

		color, ok := parseCSSColor(ds.BorderColor)
		if !ok {
			color = gochart.GetDefaultColor(i)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    ds.Label,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: color,
				StrokeWidth: 2,
				DotColor:    color,
				DotWidth:    4,
			},
		})
	}
	if maxY <= 0 {
		maxY = 1
	}

	graph := gochart.Chart{
		Title:  rd.Title,
		Width:  width,
		Height: height,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		XAxis: gochart.XAxis{
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.25, Max: float64(len(rd.Labels)-1) + 0.25},
		},
		YAxis: gochart.YAxis{
			Range: &gochart.ContinuousRange{Min: float64(rd.SuggestedMin), Max: maxY},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	return graph.Render(renderer, w)
}

// SaveImage renders rd to path.
func SaveImage(path string, rd chart.RadarData, format string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := RenderImage(f, rd, format, width, height); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func rendererFor(format string) (gochart.RendererProvider, error) {
	switch strings.ToLower(format) {
	case "svg":
		return gochart.SVG, nil
	case "png":
		return gochart.PNG, nil
	}
	return nil, fmt.Errorf("unsupported image format %q", format)
}

// parseCSSColor understands the forms used in configuration:
// #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b) and rgba(r, g, b, a).
func parseCSSColor(s string) (drawing.Color, bool) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 8 {
			a, err := strconv.ParseUint(hex[6:], 16, 8)
			if err != nil {
				return drawing.Color{}, false
			}
			c := drawing.ColorFromHex(hex[:6])
			c.A = uint8(a)
			return c, true
		}
		if len(hex) != 3 && len(hex) != 6 {
			return drawing.Color{}, false
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return drawing.Color{}, false
		}
		return drawing.ColorFromHex(hex), true
	case strings.HasPrefix(s, "rgb"):
		open, end := strings.IndexByte(s, '('), strings.LastIndexByte(s, ')')
		if open < 0 || end < open {
			return drawing.Color{}, false
		}
		parts := strings.Split(s[open+1:end], ",")
		if len(parts) != 3 && len(parts) != 4 {
			return drawing.Color{}, false
		}
		var rgb [3]uint8
		for i := 0; i < 3; i++ {
			n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
			if err != nil {
				return drawing.Color{}, false
			}
			v, err := safecast.Conv[uint8](n)
			if err != nil {
				return drawing.Color{}, false
			}
			rgb[i] = v
		}
		c := drawing.Color{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
		if len(parts) == 4 {
			alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
			if err != nil || alpha < 0 || alpha > 1 {
				return drawing.Color{}, false
			}
			c.A = uint8(alpha * 255)
		}
		return c, true
	}
	return drawing.Color{}, false
}
