// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"image"
	"image/color"
	"testing"
	"time"
)

func newTestChart(t *testing.T) *chart {
	c, err := newChart(&config{plot: "unused.png"})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestChartBounds(t *testing.T) {
	c := newTestChart(t)
	if lo, hi := c.bounds(); lo != 0 || hi != 100 {
		t.Errorf("empty bounds = %f, %f", lo, hi)
	}
	c.add(reading{Celsius: 21.25})
	if lo, hi := c.bounds(); lo != 20 || hi != 25 {
		t.Errorf("single reading bounds = %f, %f", lo, hi)
	}
	c.add(reading{Celsius: 82.75})
	if lo, hi := c.bounds(); lo != 20 || hi != 85 {
		t.Errorf("bounds = %f, %f", lo, hi)
	}
}

func TestChartDraw(t *testing.T) {
	c := newTestChart(t)
	white := color.RGBA{255, 255, 255, 255}

	img := c.draw()
	if b := img.Bounds(); b.Dx() != chartWidth || b.Dy() != chartHeight {
		t.Fatalf("unexpected bounds %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(chartWidth-1, 0)); got != white {
		t.Errorf("background is %v", got)
	}

	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	c.add(reading{Celsius: 20, at: start})
	if n := tracePixels(c.draw()); n == 0 {
		t.Error("single reading not drawn")
	}
	for i := 1; i <= 10; i++ {
		c.add(reading{Celsius: 20 + float64(i), at: start.Add(time.Duration(i) * time.Second)})
	}
	if n := tracePixels(c.draw()); n < chartWidth/2 {
		t.Errorf("trace too short: %d pixels", n)
	}
}

// tracePixels counts the red pixels of img.
func tracePixels(img image.Image) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.R > 150 && c.G < 80 && c.B < 80 {
				n++
			}
		}
	}
	return n
}

func TestNewChartDisabled(t *testing.T) {
	c, err := newChart(&config{})
	if err != nil || c != nil {
		t.Errorf("newChart() = %v, %v", c, err)
	}
}
