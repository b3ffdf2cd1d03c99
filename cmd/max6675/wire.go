// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
)

func initApp(cfg *config) (*app, func(), error) {
	wire.Build(
		newRegistry,
		openPort,
		attachDevice,
		newPublisher,
		newHeatBar,
		newChart,
		newApp,
	)
	return nil, nil, nil
}
