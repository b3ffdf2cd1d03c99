// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iio

import (
	"fmt"
	"io"
	"log"
	"sort"
	"sync"

	"periph.io/x/conn/v3/spi"
)

type entry struct {
	dev  Device
	port spi.PortCloser
}

// Registry holds the attached devices by name.
//
// A port handed to Attach belongs to the Registry: it is closed exactly once,
// either when Attach fails or when the device is detached.
type Registry struct {
	mu      sync.Mutex
	logger  *log.Logger
	devices map[string]*entry
}

// NewRegistry returns an empty Registry. logger may be nil.
func NewRegistry(logger *log.Logger) *Registry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Registry{logger: logger, devices: map[string]*entry{}}
}

// Attach probes drv on port and registers the resulting device as name. If
// name is empty, the driver name is used.
func (r *Registry) Attach(drv *SPIDriver, key MatchKey, port spi.PortCloser, name string) (Device, error) {
	if name == "" {
		name = drv.Name
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !drv.Match(key) {
		r.closePort(name, port)
		return nil, fmt.Errorf("iio: %s for %s: %w", drv, key, ErrNoMatch)
	}
	if _, ok := r.devices[name]; ok {
		r.closePort(name, port)
		return nil, fmt.Errorf("iio: %q: %w", name, ErrExists)
	}
	dev, err := drv.Probe(port, name)
	if err != nil {
		r.logger.Printf("%s: unable to register device: %v", name, err)
		r.closePort(name, port)
		return nil, err
	}
	r.devices[name] = &entry{dev: dev, port: port}
	r.logger.Printf("%s: attached %s on %s", name, drv, port)
	return dev, nil
}

// Detach unregisters the device, halts it and closes its port.
func (r *Registry) Detach(name string) error {
	r.mu.Lock()
	e, ok := r.devices[name]
	delete(r.devices, name)
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("iio: %q: %w", name, ErrNotFound)
	}
	err := e.dev.Halt()
	if err2 := e.port.Close(); err == nil {
		err = err2
	}
	r.logger.Printf("%s: detached", name)
	return err
}

// Device returns the device registered as name.
func (r *Registry) Device(name string) (Device, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.devices[name]
	if !ok {
		return nil, fmt.Errorf("iio: %q: %w", name, ErrNotFound)
	}
	return e.dev, nil
}

// Read answers a query on channel index of the device registered as name.
// Errors from the device are returned unchanged.
func (r *Registry) Read(name string, index int, info ChanInfo) (Value, error) {
	d, err := r.Device(name)
	if err != nil {
		return Value{}, err
	}
	for _, ch := range d.Channels() {
		if ch.Index == index {
			return d.ReadRaw(ch, info)
		}
	}
	return Value{}, fmt.Errorf("iio: %s channel %d: %w", name, index, ErrNoChannel)
}

// Devices returns the sorted names of the registered devices.
func (r *Registry) Devices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.devices))
	for n := range r.devices {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Close detaches every device and returns the first error.
func (r *Registry) Close() error {
	var err error
	for _, n := range r.Devices() {
		if err2 := r.Detach(n); err == nil {
			err = err2
		}
	}
	return err
}

func (r *Registry) closePort(name string, port spi.PortCloser) {
	if err := port.Close(); err != nil {
		r.logger.Printf("%s: closing %s: %v", name, port, err)
	}
}
