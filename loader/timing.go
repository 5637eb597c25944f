// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package loader

import (
	"time"
)

const (
	LATCH_SETTLE   = 10 * time.Millisecond  // Latch high hold time.
	WRITE_PULSE    = 200 * time.Millisecond // Write-enable active time.
	ADDRESS_SETTLE = 100 * time.Millisecond // Delay before the next address.
)

// Timing holds the hardware tuning delays of the loading protocol.
type Timing struct {
	LatchSettle   time.Duration
	WritePulse    time.Duration
	AddressSettle time.Duration
}

// DefaultTiming returns the delays of the reference circuit.
func DefaultTiming() Timing {
	return Timing{
		LatchSettle:   LATCH_SETTLE,
		WritePulse:    WRITE_PULSE,
		AddressSettle: ADDRESS_SETTLE,
	}
}

// Validate checks that no delay is negative.
func (tm Timing) Validate() error {
	if tm.LatchSettle < 0 || tm.WritePulse < 0 || tm.AddressSettle < 0 {
		return ErrTimingNegative
	}
	return nil
}

// PerAddress returns the total delay spent on each address.
func (tm Timing) PerAddress() time.Duration {
	return tm.LatchSettle + tm.WritePulse + tm.AddressSettle
}

// BitOrder is the order bits are shifted into the shift register.
type BitOrder int

//go:generate go tool stringer -linecomment -type=BitOrder
const (
	LSB_FIRST = BitOrder(0) // lsb
	MSB_FIRST = BitOrder(1) // msb
)

// ParseBitOrder parses "lsb" or "msb".
func ParseBitOrder(name string) (order BitOrder, err error) {
	switch name {
	case "lsb", "LSBFIRST":
		order = LSB_FIRST
	case "msb", "MSBFIRST":
		order = MSB_FIRST
	default:
		err = ErrBitOrder
	}
	return
}

// Bit returns bit n (0 is first shifted) of value in this order.
func (order BitOrder) Bit(value uint8, n int) bool {
	if order == MSB_FIRST {
		n = 7 - n
	}
	return (value>>n)&1 == 1
}
