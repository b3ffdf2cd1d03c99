// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iio

import (
	"fmt"
	"strings"

	"periph.io/x/conn/v3/spi"
)

// MatchKind is the mechanism used to identify a chip.
type MatchKind uint8

const (
	// MatchACPI is an ACPI hardware ID, e.g. "MXIM6675".
	MatchACPI MatchKind = iota
	// MatchOF is a device tree compatible string, e.g. "maxim,max6675".
	MatchOF
	// MatchSPI is a plain SPI device name, e.g. "max6675".
	MatchSPI
)

var matchKindNames = [...]string{MatchACPI: "acpi", MatchOF: "of", MatchSPI: "spi"}

func (m MatchKind) String() string {
	if int(m) < len(matchKindNames) {
		return matchKindNames[m]
	}
	return fmt.Sprintf("MatchKind(%d)", m)
}

// MatchKey identifies a chip for one matching mechanism.
type MatchKey struct {
	Kind MatchKind
	ID   string
}

func (m MatchKey) String() string {
	return m.Kind.String() + ":" + m.ID
}

// ParseMatchKey parses the "kind:id" form returned by MatchKey.String.
func ParseMatchKey(s string) (MatchKey, error) {
	kind, id, ok := strings.Cut(s, ":")
	if !ok || id == "" {
		return MatchKey{}, fmt.Errorf("iio: invalid match key %q, want kind:id", s)
	}
	for i, n := range matchKindNames {
		if strings.EqualFold(kind, n) {
			return MatchKey{Kind: MatchKind(i), ID: id}, nil
		}
	}
	return MatchKey{}, fmt.Errorf("iio: unknown match kind %q", kind)
}

// SPIDriver is the static description of a driver for a chip on an SPI bus.
type SPIDriver struct {
	// Name is the driver name, also the default device name.
	Name string
	// IDs lists every key under which the chip is known.
	IDs []MatchKey
	// Probe constructs the device on the port.
	Probe func(p spi.Port, name string) (Device, error)
}

// Match returns true if the driver declares the key.
func (d *SPIDriver) Match(k MatchKey) bool {
	for _, id := range d.IDs {
		if id.Kind == k.Kind && id.ID == k.ID {
			return true
		}
	}
	return false
}

func (d *SPIDriver) String() string {
	return d.Name
}
