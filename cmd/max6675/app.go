// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/GermanBionicSystems/thermocouple/iio"
	"github.com/GermanBionicSystems/thermocouple/max6675"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

// reading is one sample, as published.
type reading struct {
	Device  string  `json:"device"`
	Raw     int32   `json:"raw"`
	Scale   int32   `json:"scale"`
	Celsius float64 `json:"celsius"`
	TS      int64   `json:"ts"`

	temp physic.Temperature
	at   time.Time
}

type app struct {
	cfg   *config
	dev   iio.Device
	ch    iio.ChanSpec
	pub   publisher
	bar   *heatBar
	chart *chart
	out   io.Writer
}

func newRegistry(cfg *config) (*iio.Registry, func()) {
	var logger *log.Logger
	if cfg.verbose {
		logger = log.New(os.Stderr, "iio: ", log.Lmicroseconds)
	}
	r := iio.NewRegistry(logger)
	return r, func() {
		if err := r.Close(); err != nil {
			log.Printf("closing registry: %v", err)
		}
	}
}

func openPort(cfg *config) (spi.PortCloser, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	return spireg.Open(cfg.port)
}

// attachDevice hands port over to r.
func attachDevice(cfg *config, r *iio.Registry, port spi.PortCloser) (iio.Device, error) {
	key, err := iio.ParseMatchKey(cfg.match)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return r.Attach(&max6675.Driver, key, port, cfg.name)
}

func newApp(cfg *config, dev iio.Device, pub publisher, bar *heatBar, c *chart) (*app, error) {
	for _, ch := range dev.Channels() {
		if ch.Type == iio.Temperature && ch.Supports(iio.InfoRaw) && ch.Supports(iio.InfoScale) {
			return &app{cfg: cfg, dev: dev, ch: ch, pub: pub, bar: bar, chart: c, out: os.Stdout}, nil
		}
	}
	return nil, fmt.Errorf("%s has no temperature channel", dev)
}

// sample queries the raw code then the scale.
func (a *app) sample(now time.Time) (reading, error) {
	raw, err := a.dev.ReadRaw(a.ch, iio.InfoRaw)
	if err != nil {
		return reading{}, err
	}
	scale, err := a.dev.ReadRaw(a.ch, iio.InfoScale)
	if err != nil {
		return reading{}, err
	}
	t := iio.ScaledTemperature(raw, scale)
	return reading{
		Device:  a.dev.String(),
		Raw:     raw.Val,
		Scale:   scale.Val,
		Celsius: t.Celsius(),
		TS:      now.UnixMilli(),
		temp:    t,
		at:      now,
	}, nil
}

// record prints r and forwards it to the enabled sinks.
func (a *app) record(r reading) {
	if a.bar != nil {
		if err := a.bar.draw(r.temp); err != nil {
			log.Printf("heat bar: %v", err)
		}
	}
	fmt.Fprintf(a.out, "%s raw=%d scale=%d temp=%s\n", r.Device, r.Raw, r.Scale, r.temp)
	if a.chart != nil {
		a.chart.add(r)
	}
	if a.pub != nil {
		b, err := json.Marshal(&r)
		if err != nil {
			log.Printf("marshal: %v", err)
			return
		}
		if err := a.pub.Publish(a.cfg.topic, b); err != nil {
			log.Printf("publish: %v", err)
		}
	}
}

// run samples every interval until the sample count is reached or ctx is
// done. A failed read only skips that sample.
func (a *app) run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.interval)
	defer ticker.Stop()
	for n := 0; a.cfg.samples == 0 || n < a.cfg.samples; n++ {
		select {
		case <-ctx.Done():
			return a.flush()
		case now := <-ticker.C:
			r, err := a.sample(now)
			if err != nil {
				log.Printf("%s: sample unavailable: %v", a.dev, err)
				fmt.Fprintf(os.Stderr, "max6675: %v\n", err)
				continue
			}
			a.record(r)
		}
	}
	return a.flush()
}

func (a *app) flush() error {
	if a.chart == nil {
		return nil
	}
	return a.chart.save()
}
