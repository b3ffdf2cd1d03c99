// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.
//
// max6675 provides a package for interfacing a Maxim MAX6675 cold-junction
// compensated K-type thermocouple to digital converter.
//
// The chip is read only: every conversion is clocked out as a single 16-bit
// word over SPI. Bits 14..3 hold the temperature code, one count being
// 0.25°C.
//
// Range: 0°C - 1023.75°C
//
// Resolution: 0.25°C
//
// All the other bits of the word, the open thermocouple flag included, are
// discarded. An open input is not reported as an error.
//
// For detailed information, refer to the [datasheet].
//
// A command line example is available in cmd/max6675.
//
// [datasheet]: https://www.analog.com/media/en/technical-documentation/data-sheets/MAX6675.pdf
package max6675
