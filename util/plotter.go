package util

import (
	"fmt"
	"io"

	"directory-server/models/business"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// PlotBusinessLocations renders an HTML geo chart with one labelled point per
// business that has coordinates. It returns the number of plotted points.
func PlotBusinessLocations(w io.Writer, title string, businesses []business.BusinessListing) (int, error) {
	points := make([]opts.GeoData, 0, len(businesses))
	for i := range businesses {
		b := &businesses[i]
		if !b.HasCoordinates() {
			continue
		}
		// echarts geo coordinates are [lng, lat]
		points = append(points, opts.GeoData{Name: b.Name, Value: []float64{b.Longitude, b.Latitude}})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d providers with a known location", len(points)),
		}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:    "world",
			Silent: opts.Bool(true),
		}),
	)

	geo.AddSeries("Providers", types.ChartScatter, points,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{b}",
		}),
	)

	if err := geo.Render(w); err != nil {
		return 0, fmt.Errorf("failed to render map: %w", err)
	}
	return len(points), nil
}
