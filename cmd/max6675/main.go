// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// max6675 reads a MAX6675 thermocouple converter.
//
// Every -interval it queries the raw code and the scale of the temperature
// channel and prints them with the resulting temperature. The readings can
// also be drawn as a colored bar on the terminal, charted into a PNG file
// on exit and published to an MQTT broker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
)

// config is the command line configuration.
type config struct {
	port     string
	match    string
	name     string
	samples  int
	interval time.Duration
	color    bool
	plot     string
	broker   string
	topic    string
	clientID string
	verbose  bool
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("max6675", flag.ContinueOnError)
	fs.StringVar(&cfg.port, "spi", "", "SPI port to use")
	fs.StringVar(&cfg.match, "match", "spi:max6675", "match key of the chip, kind:id with kind one of acpi, of, spi")
	fs.StringVar(&cfg.name, "name", "", "device name, defaults to the driver name")
	fs.IntVar(&cfg.samples, "n", 0, "number of samples, 0 to read until interrupted")
	fs.DurationVar(&cfg.interval, "interval", time.Second, "time between samples")
	fs.BoolVar(&cfg.color, "color", isTerminal(os.Stdout), "draw a heat bar for each sample")
	fs.StringVar(&cfg.plot, "plot", "", "write a PNG chart of the samples to this file on exit")
	fs.StringVar(&cfg.broker, "mqtt", "", "MQTT broker URL to publish samples to, e.g. tcp://localhost:1883")
	fs.StringVar(&cfg.topic, "topic", "sensors/max6675", "MQTT topic")
	fs.StringVar(&cfg.clientID, "client-id", "max6675", "MQTT client ID")
	fs.BoolVar(&cfg.verbose, "v", false, "verbose mode")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, errors.New("unexpected argument, try -help")
	}
	if cfg.interval <= 0 {
		return nil, errors.New("-interval must be positive")
	}
	if cfg.samples < 0 {
		return nil, errors.New("-n must not be negative")
	}
	return cfg, nil
}

func mainImpl() error {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		return err
	}
	log.SetFlags(log.Lmicroseconds)
	if !cfg.verbose {
		log.SetOutput(io.Discard)
	}

	a, cleanup, err := initApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return a.run(ctx)
}

func main() {
	if err := mainImpl(); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "max6675: %s.\n", err)
		os.Exit(1)
	}
}
