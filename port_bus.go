// port_bus.go - 16-bit I/O port space with device callbacks

package main

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// PortIO is the byte-wide in/out instruction pair
type PortIO interface {
	In(port uint16) byte
	Out(port uint16, value byte)
}

// PortRegion routes a contiguous port range to a device
type PortRegion struct {
	start   uint16
	end     uint16
	onRead  func(port uint16) byte
	onWrite func(port uint16, value byte)
}

// PortBus dispatches port accesses to mapped devices. Ports with no device
// read as PORT_FLOAT and swallow writes.
type PortBus struct {
	mutex   sync.RWMutex
	regions []PortRegion
	sealed  atomic.Bool

	unmappedReads  atomic.Uint64
	unmappedWrites atomic.Uint64
}

func NewPortBus() *PortBus {
	return &PortBus{}
}

// MapPorts attaches handlers to [start, end]. Either handler may be nil.
func (bus *PortBus) MapPorts(start, end uint16, onRead func(port uint16) byte, onWrite func(port uint16, value byte)) {
	if bus.sealed.Load() {
		panic(fmt.Sprintf("MapPorts called after bus sealed (mapping range $%04X-$%04X)", start, end))
	}
	if end < start {
		start, end = end, start
	}

	bus.mutex.Lock()
	defer bus.mutex.Unlock()
	bus.regions = append(bus.regions, PortRegion{
		start:   start,
		end:     end,
		onRead:  onRead,
		onWrite: onWrite,
	})
}

// Seal freezes the port map
func (bus *PortBus) Seal() {
	bus.sealed.Store(true)
}

func (bus *PortBus) find(port uint16) *PortRegion {
	for i := range bus.regions {
		if port >= bus.regions[i].start && port <= bus.regions[i].end {
			return &bus.regions[i]
		}
	}
	return nil
}

func (bus *PortBus) In(port uint16) byte {
	bus.mutex.RLock()
	region := bus.find(port)
	bus.mutex.RUnlock()

	if region == nil || region.onRead == nil {
		bus.unmappedReads.Add(1)
		return PORT_FLOAT
	}
	return region.onRead(port)
}

func (bus *PortBus) Out(port uint16, value byte) {
	bus.mutex.RLock()
	region := bus.find(port)
	bus.mutex.RUnlock()

	if region == nil || region.onWrite == nil {
		bus.unmappedWrites.Add(1)
		return
	}
	region.onWrite(port, value)
}

// UnmappedAccesses reports reads and writes that hit no device
func (bus *PortBus) UnmappedAccesses() (reads, writes uint64) {
	return bus.unmappedReads.Load(), bus.unmappedWrites.Load()
}
