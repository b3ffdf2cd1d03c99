// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"log"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

const (
	connectTimeout = 10 * time.Second
	publishTimeout = 5 * time.Second
	// disconnectQuiesce is in milliseconds.
	disconnectQuiesce = 250
)

var errTimeout = errors.New("mqtt: timeout")

// publisher sends a reading payload to a topic.
type publisher interface {
	Publish(topic string, payload []byte) error
}

// nopPublisher is used when no broker is configured.
type nopPublisher struct{}

func (nopPublisher) Publish(string, []byte) error { return nil }

type mqttPublisher struct {
	c mqtt.Client
}

func newPublisher(cfg *config) (publisher, func(), error) {
	if cfg.broker == "" {
		return nopPublisher{}, func() {}, nil
	}
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.broker).
		SetClientID(cfg.clientID).
		SetConnectTimeout(5 * time.Second).
		SetAutoReconnect(true).
		SetOrderMatters(false)
	c := mqtt.NewClient(opts)
	t := c.Connect()
	if !t.WaitTimeout(connectTimeout) {
		return nil, nil, fmt.Errorf("connecting to %s: %w", cfg.broker, errTimeout)
	}
	if err := t.Error(); err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %w", cfg.broker, err)
	}
	log.Printf("mqtt: connected to %s", cfg.broker)
	p := &mqttPublisher{c: c}
	return p, p.close, nil
}

// Publish sends payload with QoS 0, not retained.
func (p *mqttPublisher) Publish(topic string, payload []byte) error {
	t := p.c.Publish(topic, 0, false, payload)
	if !t.WaitTimeout(publishTimeout) {
		return errTimeout
	}
	return t.Error()
}

func (p *mqttPublisher) close() {
	if p.c.IsConnectionOpen() {
		p.c.Disconnect(disconnectQuiesce)
	}
}
