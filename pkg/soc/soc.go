// Package soc models the shared register file and command/response buffers
// of the C0-microSD coprocessor.  The host and the device each get a typed
// view of the register file that only exposes the fields that side is
// allowed to write, preserving the hardware's single-writer-per-register
// discipline.
package soc

// Status is the device-owned status register.  Only the device writes it;
// the host polls it to pace the command protocol.
type Status uint32

const (
	StatusWaitingForCommand Status = 0
	StatusCalculating       Status = 1
	StatusDone              Status = 2
	StatusInvalidCommand    Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusWaitingForCommand:
		return "waiting_for_command"
	case StatusCalculating:
		return "calculating"
	case StatusDone:
		return "done"
	case StatusInvalidCommand:
		return "invalid_command"
	default:
		return "unknown"
	}
}

// Command is the host-owned command register.  Only the host writes it: it
// sets a non-zero command to start a calculation and clears it back to
// CommandNone to acknowledge completion.
type Command uint32

const (
	// CommandNone leaves the device idle
	CommandNone Command = 0
	// CommandCalculateWindow requests the weighted mean of the sample
	// window currently in the MOSI buffer
	CommandCalculateWindow Command = 1
)

// SoC-control register values driving the activity LED
const (
	ControlLEDOn  uint32 = 0xffffffff
	ControlLEDOff uint32 = 0x00000000
)

// Buffer geometry.  The MOSI (host to device) buffer carries a uint32 sample
// count followed by packed float32 samples; the MISO (device to host) buffer
// carries a uint32 result byte length followed by the result payload.
const (
	MOSIBufferSizeBytes = 4096
	MISOBufferSizeBytes = 4096

	countFieldSizeBytes = 4
	sampleSizeBytes     = 4

	// MaxSamples is the largest sample count that fits in the MOSI buffer
	MaxSamples = (MOSIBufferSizeBytes - countFieldSizeBytes) / sampleSizeBytes
)
