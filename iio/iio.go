// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package iio

import (
	"errors"
	"fmt"
	"strconv"

	"periph.io/x/conn/v3/physic"
)

// ChanType is the kind of measurement a channel produces.
type ChanType uint8

const (
	Voltage ChanType = iota
	Current
	Temperature
)

func (c ChanType) String() string {
	switch c {
	case Voltage:
		return "voltage"
	case Current:
		return "current"
	case Temperature:
		return "temp"
	default:
		return "ChanType(" + strconv.Itoa(int(c)) + ")"
	}
}

// ChanInfo selects the quantity requested from a channel.
type ChanInfo uint8

const (
	// InfoRaw is the unscaled code as read from the device.
	InfoRaw ChanInfo = iota
	// InfoProcessed is the value already converted to the channel unit.
	InfoProcessed
	// InfoScale is the multiplier converting a raw code to the channel unit.
	InfoScale
	// InfoOffset is added to the raw code before scaling.
	InfoOffset
)

func (i ChanInfo) String() string {
	switch i {
	case InfoRaw:
		return "raw"
	case InfoProcessed:
		return "input"
	case InfoScale:
		return "scale"
	case InfoOffset:
		return "offset"
	default:
		return "ChanInfo(" + strconv.Itoa(int(i)) + ")"
	}
}

// InfoMask is a set of ChanInfo.
type InfoMask uint32

// Mask returns the InfoMask containing infos.
func Mask(infos ...ChanInfo) InfoMask {
	var m InfoMask
	for _, i := range infos {
		m |= 1 << i
	}
	return m
}

// Has returns true if i is in the mask.
func (m InfoMask) Has(i ChanInfo) bool {
	return m&(1<<i) != 0
}

// ChanSpec describes one channel of a device. It is immutable.
type ChanSpec struct {
	Type  ChanType
	Index int
	// Info is the set of quantities the channel answers to.
	Info InfoMask
}

// Supports returns true if the channel answers queries for i.
func (c ChanSpec) Supports(i ChanInfo) bool {
	return c.Info.Has(i)
}

func (c ChanSpec) String() string {
	return c.Type.String() + strconv.Itoa(c.Index)
}

// ValType tags how the two integers of a Value must be interpreted.
type ValType uint8

const (
	// ValInt is a single integer result; Val2 is always 0.
	ValInt ValType = iota
	// ValIntPlusMicro is Val + Val2/1e6.
	ValIntPlusMicro
	// ValIntPlusNano is Val + Val2/1e9.
	ValIntPlusNano
	// ValFractional is Val / Val2.
	ValFractional
)

// Value is the answer to a channel query.
type Value struct {
	Val  int32
	Val2 int32
	Type ValType
}

// Float64 returns the value as a float.
func (v Value) Float64() float64 {
	switch v.Type {
	case ValIntPlusMicro:
		return float64(v.Val) + float64(v.Val2)/1e6
	case ValIntPlusNano:
		return float64(v.Val) + float64(v.Val2)/1e9
	case ValFractional:
		if v.Val2 == 0 {
			return 0
		}
		return float64(v.Val) / float64(v.Val2)
	default:
		return float64(v.Val)
	}
}

// String returns the value the way a sysfs attribute prints it.
func (v Value) String() string {
	switch v.Type {
	case ValInt:
		return strconv.FormatInt(int64(v.Val), 10)
	case ValIntPlusMicro:
		return fixed(int64(v.Val), int64(v.Val2), 6)
	case ValIntPlusNano:
		return fixed(int64(v.Val), int64(v.Val2), 9)
	case ValFractional:
		if v.Val2 == 0 {
			return "NaN"
		}
		n := int64(v.Val) * 1_000_000_000 / int64(v.Val2)
		return fixed(n/1_000_000_000, n%1_000_000_000, 9)
	default:
		return fmt.Sprintf("%d %d", v.Val, v.Val2)
	}
}

// fixed formats i.f with digits fractional digits. A negative f with a zero
// i denotes a negative number, as with the kernel convention.
func fixed(i, f int64, digits int) string {
	sign := ""
	if f < 0 {
		f = -f
		if i == 0 {
			sign = "-"
		}
	}
	if i < 0 {
		sign = "-"
		i = -i
	}
	return fmt.Sprintf("%s%d.%0*d", sign, i, digits, f)
}

// Device is a measurement device with a fixed set of channels.
type Device interface {
	String() string
	// Channels returns the channel descriptors of the device.
	Channels() []ChanSpec
	// ReadRaw answers one query on one channel. An unsupported query
	// returns an error wrapping ErrInvalid.
	ReadRaw(ch ChanSpec, info ChanInfo) (Value, error)
	// Halt implements conn.Resource.
	Halt() error
}

var (
	// ErrInvalid is returned for a query the channel does not support.
	ErrInvalid = errors.New("iio: invalid query")
	// ErrNoChannel is returned when the device has no such channel.
	ErrNoChannel = errors.New("iio: no such channel")
	// ErrNotFound is returned for an unknown device name.
	ErrNotFound = errors.New("iio: device not found")
	// ErrExists is returned when a device name is already registered.
	ErrExists = errors.New("iio: device already registered")
	// ErrNoMatch is returned when a driver does not match a key.
	ErrNoMatch = errors.New("iio: driver does not match")
)

// ScaledTemperature converts a raw temperature code and its scale into a
// physic.Temperature. The framework unit for temperature is the milli degree
// Celsius.
func ScaledTemperature(raw, scale Value) physic.Temperature {
	if raw.Type == ValInt && scale.Type == ValInt {
		return physic.ZeroCelsius + physic.Temperature(int64(raw.Val)*int64(scale.Val))*physic.MilliKelvin
	}
	return physic.ZeroCelsius + physic.Temperature(raw.Float64()*scale.Float64()*float64(physic.MilliKelvin))
}

// ReadTemperature queries the raw code then the scale of ch and returns the
// temperature.
func ReadTemperature(d Device, ch ChanSpec) (physic.Temperature, error) {
	if ch.Type != Temperature {
		return 0, fmt.Errorf("iio: %s is not a temperature channel: %w", ch, ErrInvalid)
	}
	raw, err := d.ReadRaw(ch, InfoRaw)
	if err != nil {
		return 0, err
	}
	scale, err := d.ReadRaw(ch, InfoScale)
	if err != nil {
		return 0, err
	}
	return ScaledTemperature(raw, scale), nil
}
