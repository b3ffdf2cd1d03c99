// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6675

import (
	"periph.io/x/conn/v3"
	"tinygo.org/x/drivers"
)

// tinyConn adapts a TinyGo SPI bus to conn.Conn.
type tinyConn struct {
	bus  drivers.SPI
	name string
}

func (t *tinyConn) String() string {
	return t.name
}

func (t *tinyConn) Tx(w, r []byte) error {
	return t.bus.Tx(w, r)
}

func (t *tinyConn) Duplex() conn.Duplex {
	return conn.Full
}

// NewTinyGo returns a MAX6675 on a TinyGo SPI bus. The bus must already be
// configured for mode 1 and a SCK of at most MaxFrequency; busName is only
// used by String.
func NewTinyGo(bus drivers.SPI, busName string) *Dev {
	return &Dev{c: &tinyConn{bus: bus, name: busName}, name: name}
}
