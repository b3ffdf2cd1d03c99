// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	chartWidth  = 800
	chartHeight = 400
	chartMargin = 48.0
)

// chart accumulates readings and draws them as a temperature over time line.
type chart struct {
	path     string
	face     font.Face
	readings []reading
}

func newChart(cfg *config) (*chart, error) {
	if cfg.plot == "" {
		return nil, nil
	}
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return &chart{path: cfg.plot, face: truetype.NewFace(f, &truetype.Options{Size: 12})}, nil
}

func (c *chart) add(r reading) {
	c.readings = append(c.readings, r)
}

// bounds returns the temperature range to plot, in °C, rounded out to 5°C.
func (c *chart) bounds() (lo, hi float64) {
	if len(c.readings) == 0 {
		return 0, 100
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, r := range c.readings {
		lo = math.Min(lo, r.Celsius)
		hi = math.Max(hi, r.Celsius)
	}
	lo = math.Floor(lo/5) * 5
	hi = math.Ceil(hi/5) * 5
	if hi-lo < 5 {
		hi = lo + 5
	}
	return lo, hi
}

func (c *chart) draw() image.Image {
	dc := gg.NewContext(chartWidth, chartHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(c.face)

	left, right := chartMargin, float64(chartWidth)-chartMargin/2
	top, bottom := chartMargin/2, float64(chartHeight)-chartMargin
	lo, hi := c.bounds()

	// Axes and labels.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(left, top, left, bottom)
	dc.DrawLine(left, bottom, right, bottom)
	dc.Stroke()
	dc.DrawStringAnchored(fmt.Sprintf("%.0f°C", hi), left-4, top, 1, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.0f°C", lo), left-4, bottom, 1, 0.5)
	if n := len(c.readings); n != 0 {
		first, last := c.readings[0].at, c.readings[n-1].at
		dc.DrawStringAnchored(first.Format("15:04:05"), left, bottom+4, 0, 1)
		dc.DrawStringAnchored(last.Format("15:04:05"), right, bottom+4, 1, 1)
	}
	if len(c.readings) < 2 {
		if len(c.readings) == 1 {
			y := bottom - (c.readings[0].Celsius-lo)/(hi-lo)*(bottom-top)
			dc.SetRGB(0.8, 0, 0)
			dc.DrawCircle(left, y, 3)
			dc.Fill()
		}
		return dc.Image()
	}

	// Temperature trace.
	start := c.readings[0].at
	span := c.readings[len(c.readings)-1].at.Sub(start).Seconds()
	dc.SetRGB(0.8, 0, 0)
	dc.SetLineWidth(2)
	for i, r := range c.readings {
		x := left
		if span > 0 {
			x += r.at.Sub(start).Seconds() / span * (right - left)
		}
		y := bottom - (r.Celsius-lo)/(hi-lo)*(bottom-top)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.Stroke()
	return dc.Image()
}

func (c *chart) save() error {
	if err := gg.SavePNG(c.path, c.draw()); err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	return nil
}
