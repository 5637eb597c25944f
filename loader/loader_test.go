package loader

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/sap1/asm"
	"github.com/ezrec/sap1/gpio"
)

// SETS_PER_ADDRESS is address, latch low, 8 shifts, latch pulse, write pulse.
const SETS_PER_ADDRESS = gpio.ADDRESS_LINES + 1 + 8*3 + 2 + 2

// RESET_SETS is the number of level changes of Loader.Reset.
const RESET_SETS = gpio.ADDRESS_LINES + 2

func assemble(t *testing.T, lines ...string) asm.Image {
	img, err := (&asm.Assembler{}).Assemble(lines)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func ev(pin gpio.Pin, level gpio.Level) gpio.Event {
	return gpio.Event{Pin: pin, Level: level}
}

// expectedSets is the level sequence of one address with the default wiring.
func expectedSets(addr int, value uint8, order BitOrder) (sets []gpio.Event) {
	for n := range gpio.ADDRESS_LINES {
		sets = append(sets, ev(gpio.AddressPin(n), gpio.Level((addr>>n)&1)))
	}
	sets = append(sets, ev(gpio.PIN_LATCH, gpio.LOW))
	for n := range 8 {
		sets = append(sets,
			ev(gpio.PIN_DATA, gpio.LevelOf(order.Bit(value, n))),
			ev(gpio.PIN_CLOCK, gpio.HIGH),
			ev(gpio.PIN_CLOCK, gpio.LOW),
		)
	}
	sets = append(sets,
		ev(gpio.PIN_LATCH, gpio.HIGH),
		ev(gpio.PIN_LATCH, gpio.LOW),
		ev(gpio.PIN_WRITE, gpio.LOW),
		ev(gpio.PIN_WRITE, gpio.HIGH),
	)
	return
}

func TestLoaderOrdering(t *testing.T) {
	assert := assert.New(t)

	img := assemble(t, "LDI 5", "OUT", "HLT", "7")
	rc := &gpio.Recorder{}

	ld := NewLoader()
	err := ld.Load(img, rc)
	assert.NoError(err)

	sets := rc.Sets()
	assert.Len(sets, RESET_SETS+asm.PROGRAM_LEN*SETS_PER_ADDRESS)

	reset := []gpio.Event{
		ev(gpio.PIN_ADDR0, gpio.LOW),
		ev(gpio.PIN_ADDR1, gpio.LOW),
		ev(gpio.PIN_ADDR2, gpio.LOW),
		ev(gpio.PIN_ADDR3, gpio.LOW),
		ev(gpio.PIN_LATCH, gpio.LOW),
		ev(gpio.PIN_WRITE, gpio.HIGH),
	}
	assert.Equal(reset, sets[:RESET_SETS])

	sets = sets[RESET_SETS:]
	for addr, word := range img.Words() {
		start := addr * SETS_PER_ADDRESS
		assert.Equal(expectedSets(addr, word.Value, LSB_FIRST), sets[start:start+SETS_PER_ADDRESS], "address %d", addr)
	}

	// Lines are left idle.
	assert.Equal(gpio.HIGH, rc.Levels[gpio.PIN_WRITE])
	assert.Equal(gpio.LOW, rc.Levels[gpio.PIN_LATCH])
	assert.Equal(gpio.LOW, rc.Levels[gpio.PIN_CLOCK])
}

func TestLoaderShifted(t *testing.T) {
	assert := assert.New(t)

	img := assemble(t, "LDI 5", "OUT", "HLT")
	rc := &gpio.Recorder{}

	err := NewLoader().Load(img, rc)
	assert.NoError(err)

	bits := rc.Shifted()
	assert.Len(bits, 8*len(img))
	for addr, word := range img.Words() {
		var value uint8
		for n, bit := range bits[addr*8 : addr*8+8] {
			value |= uint8(bit) << n
		}
		assert.Equal(word.Value, value, "address %d", addr)
	}
}

func TestLoaderBitOrder(t *testing.T) {
	assert := assert.New(t)

	ld := NewLoader()
	bits := func() []gpio.Level {
		rc := &gpio.Recorder{}
		err := ld.SendByte(rc, 0b10110000)
		assert.NoError(err)
		return rc.Shifted()
	}

	ld.Order = LSB_FIRST
	assert.Equal([]gpio.Level{0, 0, 0, 0, 1, 1, 0, 1}, bits())

	ld.Order = MSB_FIRST
	assert.Equal([]gpio.Level{1, 0, 1, 1, 0, 0, 0, 0}, bits())
}

func TestLoaderTiming(t *testing.T) {
	assert := assert.New(t)

	img := assemble(t, "NOP")
	rc := &gpio.Recorder{}

	ld := NewLoader()
	assert.NoError(ld.Load(img, rc))

	sleeps := rc.Sleeps()
	assert.Len(sleeps, 3*asm.PROGRAM_LEN)
	for n := 0; n < len(sleeps); n += 3 {
		assert.Equal(10*time.Millisecond, sleeps[n])
		assert.Equal(200*time.Millisecond, sleeps[n+1])
		assert.Equal(100*time.Millisecond, sleeps[n+2])
	}

	// Latch is held high for the settle time; write is held active for
	// the pulse time.
	events := rc.Events[RESET_SETS:]
	latch := SETS_PER_ADDRESS - 4
	assert.Equal(ev(gpio.PIN_LATCH, gpio.HIGH), events[latch])
	assert.Equal(gpio.Event{Delay: LATCH_SETTLE}, events[latch+1])
	assert.Equal(ev(gpio.PIN_LATCH, gpio.LOW), events[latch+2])
	assert.Equal(ev(gpio.PIN_WRITE, gpio.LOW), events[latch+3])
	assert.Equal(gpio.Event{Delay: WRITE_PULSE}, events[latch+4])
	assert.Equal(ev(gpio.PIN_WRITE, gpio.HIGH), events[latch+5])
	assert.Equal(gpio.Event{Delay: ADDRESS_SETTLE}, events[latch+6])
	assert.Equal(ev(gpio.PIN_ADDR0, gpio.HIGH), events[latch+7])

	assert.Equal(310*time.Millisecond, ld.Timing.PerAddress())
}

func TestLoaderCustomTiming(t *testing.T) {
	assert := assert.New(t)

	img := assemble(t)
	rc := &gpio.Recorder{}

	ld := NewLoader()
	ld.Timing = Timing{LatchSettle: time.Millisecond}
	assert.NoError(ld.Load(img, rc))
	assert.Len(rc.Sleeps(), asm.PROGRAM_LEN)

	ld.Timing.WritePulse = -1
	rc.Reset()
	assert.Equal(ErrTimingNegative, ld.Load(img, rc))
	assert.Nil(rc.Events)
}

func TestLoaderWriteActiveHigh(t *testing.T) {
	assert := assert.New(t)

	rc := &gpio.Recorder{}
	ld := NewLoader()
	ld.WriteActiveHigh = true

	assert.NoError(ld.Reset(rc))
	assert.Equal(gpio.LOW, rc.Levels[gpio.PIN_WRITE])

	rc.Reset()
	assert.NoError(ld.Commit(rc))
	assert.Equal([]gpio.Event{
		ev(gpio.PIN_WRITE, gpio.HIGH),
		ev(gpio.PIN_WRITE, gpio.LOW),
	}, rc.Sets())
}

func TestLoaderFailure(t *testing.T) {
	assert := assert.New(t)

	img := assemble(t, "LDI 5", "OUT", "HLT")

	// Fail in the middle of the shift of address 2.
	fail := RESET_SETS + 2*SETS_PER_ADDRESS + 10
	rc := &gpio.Recorder{FailAfter: fail}

	err := NewLoader().Load(img, rc)
	assert.True(errors.Is(err, ErrHardwareIO))
	assert.True(errors.Is(err, gpio.ErrInjected))

	var hw *ErrHardware
	if assert.True(errors.As(err, &hw)) {
		assert.Equal(2, hw.Address)
		assert.Equal("HLT 0x0", hw.Text)
	}

	// Nothing is attempted after the failure.
	assert.Len(rc.Sets(), fail-1)
}

func TestLoaderFailureReset(t *testing.T) {
	assert := assert.New(t)

	rc := &gpio.Recorder{FailAfter: 1}
	err := NewLoader().Load(assemble(t), rc)

	var hw *ErrHardware
	if assert.True(errors.As(err, &hw)) {
		assert.Equal(-1, hw.Address)
	}
	assert.True(errors.Is(err, ErrHardwareIO))
	assert.Empty(rc.Events)
}

func TestLoaderImageSize(t *testing.T) {
	assert := assert.New(t)

	img := make(asm.Image, asm.PROGRAM_LEN+1)
	rc := &gpio.Recorder{}

	err := NewLoader().Load(img, rc)
	assert.Equal(ErrImageSize, err)
	assert.Empty(rc.Events)
}

func TestLoaderShortImage(t *testing.T) {
	assert := assert.New(t)

	img, err := (&asm.Assembler{Capacity: 2}).Assemble([]string{"LDA 1"})
	assert.NoError(err)

	rc := &gpio.Recorder{}
	assert.NoError(NewLoader().Load(img, rc))
	assert.Len(rc.Sets(), RESET_SETS+2*SETS_PER_ADDRESS)
}

func TestParseBitOrder(t *testing.T) {
	assert := assert.New(t)

	order, err := ParseBitOrder("lsb")
	assert.NoError(err)
	assert.Equal(LSB_FIRST, order)

	order, err = ParseBitOrder("MSBFIRST")
	assert.NoError(err)
	assert.Equal(MSB_FIRST, order)

	_, err = ParseBitOrder("middle")
	assert.Equal(ErrBitOrder, err)

	assert.Equal("lsb", LSB_FIRST.String())
	assert.Equal("msb", MSB_FIRST.String())
	assert.Equal("BitOrder(2)", BitOrder(2).String())
}
