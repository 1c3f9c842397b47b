package soc

import (
	"sync"
)

// RegisterFile is the shared state between the host and the device: the
// three registers plus the two transfer buffers.  A single mutex guards the
// whole block, standing in for the hardware's implicit ordering of
// memory-mapped stores.  Neither side holds the lock across a blocking wait,
// so every register write becomes visible to the other side in the order it
// was issued.
type RegisterFile struct {
	mu      sync.Mutex
	status  Status
	control uint32
	command Command
	mosi    [MOSIBufferSizeBytes]byte
	miso    [MISOBufferSizeBytes]byte
}

// NewRegisterFile returns a zeroed register file: status waiting, LED off,
// no command pending.
func NewRegisterFile() *RegisterFile {
	return &RegisterFile{}
}

// Device returns the device-side view.  Exactly one device loop should use it.
func (r *RegisterFile) Device() *DeviceView {
	return &DeviceView{r: r}
}

// Host returns the host-side view.
func (r *RegisterFile) Host() *HostView {
	return &HostView{r: r}
}

// DeviceView exposes the register file operations the device is allowed to
// perform: write Status, SoC-control and the MISO buffer, read Command and
// the MOSI buffer.
type DeviceView struct {
	r *RegisterFile
}

// SetStatus publishes a new status to the host
func (d *DeviceView) SetStatus(s Status) {
	d.r.mu.Lock()
	defer d.r.mu.Unlock()
	d.r.status = s
}

// SetControl writes the SoC-control word, conventionally ControlLEDOn or
// ControlLEDOff
func (d *DeviceView) SetControl(v uint32) {
	d.r.mu.Lock()
	defer d.r.mu.Unlock()
	d.r.control = v
}

// Command reads the command register without consuming it; only the host
// clears it
func (d *DeviceView) Command() Command {
	d.r.mu.Lock()
	defer d.r.mu.Unlock()
	return d.r.command
}

// ReadRequest copies the MOSI buffer out of the register file
func (d *DeviceView) ReadRequest() []byte {
	d.r.mu.Lock()
	defer d.r.mu.Unlock()
	out := make([]byte, MOSIBufferSizeBytes)
	copy(out, d.r.mosi[:])
	return out
}

// WriteResponse copies an encoded response into the MISO buffer
func (d *DeviceView) WriteResponse(p []byte) error {
	if len(p) > MISOBufferSizeBytes {
		return ShortBuffer{Need: len(p), Have: MISOBufferSizeBytes}
	}
	d.r.mu.Lock()
	defer d.r.mu.Unlock()
	copy(d.r.miso[:], p)
	return nil
}

// HostView exposes the register file operations the host is allowed to
// perform: write Command and the MOSI buffer, read Status, SoC-control and
// the MISO buffer.
type HostView struct {
	r *RegisterFile
}

// Status reads the device status register
func (h *HostView) Status() Status {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.r.status
}

// Control reads the SoC-control word
func (h *HostView) Control() uint32 {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	return h.r.control
}

// SetCommand issues a command, or acknowledges completion when called with
// CommandNone
func (h *HostView) SetCommand(c Command) {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	h.r.command = c
}

// WriteRequest copies an encoded request into the MOSI buffer
func (h *HostView) WriteRequest(p []byte) error {
	if len(p) > MOSIBufferSizeBytes {
		return ShortBuffer{Need: len(p), Have: MOSIBufferSizeBytes}
	}
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	copy(h.r.mosi[:], p)
	return nil
}

// ReadResponse copies the MISO buffer out of the register file
func (h *HostView) ReadResponse() []byte {
	h.r.mu.Lock()
	defer h.r.mu.Unlock()
	out := make([]byte, MISOBufferSizeBytes)
	copy(out, h.r.miso[:])
	return out
}
