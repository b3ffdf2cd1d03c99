// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/physic"
)

const (
	heatWidth = 40
	// heatMax is the top of the MAX6675 range.
	heatMax = physic.ZeroCelsius + 1024*physic.Kelvin
)

// heatBar draws a temperature as a bar of ANSI colored blocks, from blue at
// 0°C to red at the top of the range.
type heatBar struct {
	w       io.Writer
	width   int
	palette ansi256.Palette

	buf bytes.Buffer
}

func newHeatBar(cfg *config) *heatBar {
	if !cfg.color {
		return nil
	}
	return &heatBar{w: colorable.NewColorableStdout(), width: heatWidth, palette: *ansi256.Default}
}

// heatColor returns the color at position i of n.
func heatColor(i, n int) color.NRGBA {
	if n <= 1 {
		return color.NRGBA{0, 0, 255, 255}
	}
	r := byte(255 * i / (n - 1))
	return color.NRGBA{r, 0, 255 - r, 255}
}

// cells returns the number of lit cells for t.
func (h *heatBar) cells(t physic.Temperature) int {
	if t <= physic.ZeroCelsius {
		return 0
	}
	if t >= heatMax {
		return h.width
	}
	return int(int64(h.width) * int64(t-physic.ZeroCelsius) / int64(heatMax-physic.ZeroCelsius))
}

func (h *heatBar) draw(t physic.Temperature) error {
	h.buf.Reset()
	_, _ = h.buf.WriteString("\033[0m")
	lit := h.cells(t)
	for i := 0; i < h.width; i++ {
		if i < lit {
			_, _ = io.WriteString(&h.buf, h.palette.Block(heatColor(i, h.width)))
		} else {
			_ = h.buf.WriteByte(' ')
		}
	}
	_, _ = h.buf.WriteString("\033[0m ")
	_, err := h.buf.WriteTo(h.w)
	return err
}
