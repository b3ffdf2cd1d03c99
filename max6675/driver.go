// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package max6675

import (
	"github.com/GermanBionicSystems/thermocouple/iio"
	"periph.io/x/conn/v3/spi"
)

// Driver describes the MAX6675 driver to an iio.Registry.
var Driver = iio.SPIDriver{
	Name: name,
	IDs: []iio.MatchKey{
		{Kind: iio.MatchACPI, ID: "MXIM6675"},
		{Kind: iio.MatchOF, ID: "maxim,max6675"},
		{Kind: iio.MatchSPI, ID: "max6675"},
	},
	Probe: probe,
}

func probe(p spi.Port, name string) (iio.Device, error) {
	d, err := New(p)
	if err != nil {
		return nil, err
	}
	if name != "" {
		d.name = name
	}
	return d, nil
}
