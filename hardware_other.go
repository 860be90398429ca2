//go:build !linux

package main

import "errors"

type HostHardware struct {
	Text  TextSurface
	Ports PortIO
}

func OpenHostHardware() (*HostHardware, error) {
	return nil, errors.New("host text mode hardware is only reachable on linux")
}

func (h *HostHardware) Close() error {
	return nil
}
