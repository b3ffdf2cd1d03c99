// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package thermocouple is a container for thermocouple converter drivers.
//
// The drivers are exposed through the channel based measurement framework
// in package iio. See package max6675 for the MAX6675 driver and
// cmd/max6675 for a command line tool reading it.
package thermocouple
