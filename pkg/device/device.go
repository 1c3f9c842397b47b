// Package device implements the coprocessor control loop: it polls the
// command register, runs the requested window calculation, publishes the
// result through the MISO buffer and the status register, and waits for the
// host to acknowledge before idling again.
package device

import (
	"context"
	"runtime"

	"go.uber.org/zap"

	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/dist"
	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/fsm"
	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/soc"
	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/window"
)

// Device owns one side of the register protocol.  It is the only writer of
// the status register, the SoC-control word and the MISO buffer; the host is
// the only writer of the command register and the MOSI buffer.
type Device struct {
	regs        *soc.DeviceView
	sub         dist.Substrate
	lifecycle   *fsm.Machine
	log         *zap.Logger
	yield       func()
	maxCommands int
}

// Option configures a Device
type Option func(d *Device) error

// WithLogger sets the structured logger.  Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(d *Device) error {
		d.log = log
		return nil
	}
}

// WithSubstrate sets the numeric substrate the statistical core runs on.
// Defaults to the in-process empirical substrate.
func WithSubstrate(sub dist.Substrate) Option {
	return func(d *Device) error {
		d.sub = sub
		return nil
	}
}

// WithYield sets the hook called on every empty poll of the command
// register.  Defaults to runtime.Gosched; the polling itself never times
// out, pacing is entirely host driven.
func WithYield(yield func()) Option {
	return func(d *Device) error {
		d.yield = yield
		return nil
	}
}

// WithMaxCommands makes Run return after serving n complete command cycles
// instead of looping forever.  Used by test harnesses.
func WithMaxCommands(n int) Option {
	return func(d *Device) error {
		d.maxCommands = n
		return nil
	}
}

// New returns a Device bound to the device-side register view
func New(regs *soc.DeviceView, opts ...Option) (*Device, error) {
	machine, err := newMachine()
	if err != nil {
		return nil, err
	}
	d := &Device{
		regs:      regs,
		sub:       dist.NewEmpirical(),
		lifecycle: machine,
		log:       zap.NewNop(),
		yield:     runtime.Gosched,
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// State returns the current lifecycle state of the control loop
func (d *Device) State() fsm.State {
	return d.lifecycle.State()
}

// Run drives the control loop until the context is canceled or, when
// configured with WithMaxCommands, until that many command cycles finish.
// The status register is set to waiting before each blocking poll, so the
// host always observes waiting_for_command before issuing a new command.
func (d *Device) Run(ctx context.Context) error {
	d.log.Info("[device] control loop started")
	for served := 0; d.maxCommands == 0 || served < d.maxCommands; served++ {
		d.regs.SetStatus(soc.StatusWaitingForCommand)

		cmd, err := d.await(ctx, func(c soc.Command) bool { return c != soc.CommandNone })
		if err != nil {
			return err
		}
		if err := d.lifecycle.Transition(Calculating); err != nil {
			return err
		}
		d.regs.SetStatus(soc.StatusCalculating)
		d.regs.SetControl(soc.ControlLEDOn)

		switch cmd {
		case soc.CommandCalculateWindow:
			if err := d.calculateWindow(); err != nil {
				d.log.Warn("[device] rejecting window calculation", zap.Error(err))
				d.reject()
			} else {
				d.regs.SetControl(soc.ControlLEDOff)
				d.regs.SetStatus(soc.StatusDone)
				if err := d.lifecycle.Transition(Completed); err != nil {
					return err
				}
			}
		default:
			d.log.Warn("[device] unrecognized command", zap.Uint32("command", uint32(cmd)))
			d.reject()
		}

		// hold the final status until the host clears the command register
		if _, err := d.await(ctx, func(c soc.Command) bool { return c == soc.CommandNone }); err != nil {
			return err
		}
		if err := d.lifecycle.Transition(Idle); err != nil {
			return err
		}
	}
	d.log.Info("[device] control loop finished")
	return nil
}

// calculateWindow reads the sample window from the MOSI buffer, runs the
// statistical core and publishes the scalar result.  Any failure leaves the
// MISO buffer untouched.
func (d *Device) calculateWindow() error {
	samples, err := soc.DecodeRequest(d.regs.ReadRequest())
	if err != nil {
		return err
	}
	result, err := window.WeightedMean(samples, d.sub)
	if err != nil {
		return err
	}
	if err := d.regs.WriteResponse(soc.EncodeResponse(result)); err != nil {
		return err
	}
	d.log.Info("[device] window calculated",
		zap.Int("samples", len(samples)),
		zap.Float32("weightedMean", result),
	)
	return nil
}

func (d *Device) reject() {
	d.regs.SetControl(soc.ControlLEDOff)
	d.regs.SetStatus(soc.StatusInvalidCommand)
	// the rejected edge exists in the transition table, the error path is
	// unreachable with a fixed table
	_ = d.lifecycle.Transition(Rejected)
}

// await spins on the command register until ready reports true, yielding
// between polls.  It returns early only when the context is canceled.
func (d *Device) await(ctx context.Context, ready func(soc.Command) bool) (soc.Command, error) {
	for {
		if err := ctx.Err(); err != nil {
			return soc.CommandNone, err
		}
		if c := d.regs.Command(); ready(c) {
			return c, nil
		}
		d.yield()
	}
}
