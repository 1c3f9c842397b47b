package soc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterFileInitialState(t *testing.T) {
	regs := NewRegisterFile()
	host := regs.Host()
	assert.Equal(t, StatusWaitingForCommand, host.Status())
	assert.Equal(t, ControlLEDOff, host.Control())
	assert.Equal(t, CommandNone, regs.Device().Command())
}

func TestRegisterViewsShareState(t *testing.T) {
	regs := NewRegisterFile()
	device := regs.Device()
	host := regs.Host()

	host.SetCommand(CommandCalculateWindow)
	assert.Equal(t, CommandCalculateWindow, device.Command())

	device.SetStatus(StatusCalculating)
	device.SetControl(ControlLEDOn)
	assert.Equal(t, StatusCalculating, host.Status())
	assert.Equal(t, ControlLEDOn, host.Control())
}

func TestBufferTransfer(t *testing.T) {
	regs := NewRegisterFile()
	device := regs.Device()
	host := regs.Host()

	req, err := EncodeRequest([]float32{1, 2, 3})
	assert.NoError(t, err)
	assert.NoError(t, host.WriteRequest(req))

	samples, err := DecodeRequest(device.ReadRequest())
	assert.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, samples)

	assert.NoError(t, device.WriteResponse(EncodeResponse(2.0)))
	result, err := DecodeResponse(host.ReadResponse())
	assert.NoError(t, err)
	assert.Equal(t, float32(2.0), result)
}

func TestWriteRejectsOverflow(t *testing.T) {
	regs := NewRegisterFile()
	assert.Error(t, regs.Host().WriteRequest(make([]byte, MOSIBufferSizeBytes+1)))
	assert.Error(t, regs.Device().WriteResponse(make([]byte, MISOBufferSizeBytes+1)))
}
