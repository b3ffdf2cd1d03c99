// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package iio is a small industrial I/O style measurement framework.
//
// A Device exposes one or more channels. Each channel has a type (voltage,
// temperature, ...) and a mask of the quantities that can be queried on it.
// The raw quantity is the unscaled code read from the chip; the scale is the
// multiplier converting that code into the framework's unit for the channel
// type. For temperature the unit is the milli degree Celsius, so a raw code
// of 331 with a scale of 250 is 82.750°C.
//
// Drivers declare the keys they match (ACPI, device tree or SPI identifiers)
// in an SPIDriver. A Registry attaches a driver to an SPI port and owns the
// port for as long as the device is registered.
package iio
