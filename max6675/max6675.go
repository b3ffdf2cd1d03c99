// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6675

import (
	"encoding/binary"
	"fmt"

	"github.com/GermanBionicSystems/thermocouple/iio"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	// MaxFrequency is the fastest SCK the chip accepts.
	MaxFrequency = 4300 * physic.KiloHertz
	// Resolution is the temperature of one count.
	Resolution physic.Temperature = 250 * physic.MilliKelvin

	// SpiMode and SpiBits are the bus settings used on Connect.
	SpiMode = spi.Mode1
	SpiBits = 16

	name = "max6675"
	// scale is Resolution in the iio unit for temperature, milli °C.
	scale     = 250
	codeShift = 3
	codeMask  = 0xfff
)

// channel is the single channel of the device. It never changes.
var channel = iio.ChanSpec{
	Type:  iio.Temperature,
	Index: 0,
	Info:  iio.Mask(iio.InfoRaw, iio.InfoScale),
}

// Dev represents a MAX6675 thermocouple converter.
type Dev struct {
	c    conn.Conn
	name string
}

// New returns a MAX6675 on the specified SPI port.
func New(p spi.Port) (*Dev, error) {
	c, err := p.Connect(MaxFrequency, SpiMode, SpiBits)
	if err != nil {
		return nil, fmt.Errorf("max6675: %w", err)
	}
	return &Dev{c: c, name: name}, nil
}

// Decode extracts the temperature code, bits 14..3, from a raw word.
func Decode(w uint16) uint16 {
	return (w >> codeShift) & codeMask
}

// read does one 2 bytes bus transaction and returns the word as clocked out
// by the chip, MSB first.
func (d *Dev) read() (uint16, error) {
	var w, r [2]byte
	if err := d.c.Tx(w[:], r[:]); err != nil {
		return 0, fmt.Errorf("max6675: bus read failed: %w", err)
	}
	return binary.BigEndian.Uint16(r[:]), nil
}

// Channels implements iio.Device.
func (d *Dev) Channels() []iio.ChanSpec {
	return []iio.ChanSpec{channel}
}

// ReadRaw implements iio.Device.
//
// InfoRaw reads the chip and returns the decoded temperature code. InfoScale
// returns 250, the milli °C of one count, without touching the bus. Both are
// single integer results.
func (d *Dev) ReadRaw(ch iio.ChanSpec, info iio.ChanInfo) (iio.Value, error) {
	if ch.Type != channel.Type || ch.Index != channel.Index {
		return iio.Value{}, fmt.Errorf("max6675: channel %s: %w", ch, iio.ErrInvalid)
	}
	switch info {
	case iio.InfoRaw:
		w, err := d.read()
		if err != nil {
			return iio.Value{}, err
		}
		return iio.Value{Val: int32(Decode(w)), Type: iio.ValInt}, nil
	case iio.InfoScale:
		return iio.Value{Val: scale, Type: iio.ValInt}, nil
	default:
		return iio.Value{}, fmt.Errorf("max6675: %s: %w", info, iio.ErrInvalid)
	}
}

// Sense reads the thermocouple temperature and writes it to env.
func (d *Dev) Sense(env *physic.Env) error {
	t, err := iio.ReadTemperature(d, channel)
	if err != nil {
		return err
	}
	env.Temperature = t
	return nil
}

// Precision returns the resolution of the device, 0.25°C.
func (d *Dev) Precision(env *physic.Env) {
	env.Temperature = Resolution
	env.Pressure = 0
	env.Humidity = 0
}

// Halt implements conn.Resource. The chip converts continuously and there is
// nothing to stop.
func (d *Dev) Halt() error {
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("%s: %s", d.name, d.c)
}

var _ conn.Resource = &Dev{}
var _ iio.Device = &Dev{}
