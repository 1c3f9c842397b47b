// Package host implements the host side of the register protocol: write a
// sample window into the MOSI buffer, raise the command, poll status until
// the device reports a terminal state, read the result and acknowledge.
package host

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"

	"github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/soc"
)

const defaultTimeout = 5 * time.Second

// CommandRejected is returned when the device reports invalid_command for an
// issued command
type CommandRejected struct {
	Command soc.Command
}

func (e CommandRejected) Error() string {
	return fmt.Sprintf("device rejected command %d", e.Command)
}

// Client drives commands against a device through the host-side register
// view.  It is the only writer of the command register and the MOSI buffer.
type Client struct {
	regs    *soc.HostView
	log     *zap.Logger
	timeout time.Duration
}

// Option configures a Client
type Option func(c *Client) error

// WithLogger sets the structured logger.  Defaults to a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}

// WithTimeout bounds how long the client polls for any single status
// transition.  The device itself never times out; this protects the host
// from a wedged device.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive")
		}
		c.timeout = d
		return nil
	}
}

// New returns a Client bound to the host-side register view
func New(regs *soc.HostView, opts ...Option) (*Client, error) {
	c := &Client{
		regs:    regs,
		log:     zap.NewNop(),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// CalculateWindow runs one full command cycle and returns the weighted mean
// the device computed for the sample window
func (c *Client) CalculateWindow(samples []float32) (float32, error) {
	req, err := soc.EncodeRequest(samples)
	if err != nil {
		return 0, err
	}

	// a new command may only be issued once the device reports waiting
	if err := c.awaitStatus(soc.StatusWaitingForCommand); err != nil {
		return 0, err
	}
	if err := c.regs.WriteRequest(req); err != nil {
		return 0, err
	}
	c.regs.SetCommand(soc.CommandCalculateWindow)
	c.log.Info("[host] command issued", zap.Int("samples", len(samples)))

	err = c.awaitTerminal()
	if err != nil {
		// acknowledge a rejection so the device returns to waiting
		c.regs.SetCommand(soc.CommandNone)
		return 0, err
	}

	result, err := soc.DecodeResponse(c.regs.ReadResponse())
	c.regs.SetCommand(soc.CommandNone)
	if err != nil {
		return 0, err
	}
	c.log.Info("[host] result received", zap.Float32("weightedMean", result))
	return result, nil
}

// awaitTerminal polls with exponential backoff until the device reports done
// or invalid_command
func (c *Client) awaitTerminal() error {
	op := func() error {
		switch s := c.regs.Status(); s {
		case soc.StatusDone:
			return nil
		case soc.StatusInvalidCommand:
			return backoff.Permanent(CommandRejected{Command: soc.CommandCalculateWindow})
		default:
			return fmt.Errorf("device busy: %s", s)
		}
	}
	return backoff.Retry(op, c.newBackOff())
}

func (c *Client) awaitStatus(want soc.Status) error {
	op := func() error {
		if s := c.regs.Status(); s != want {
			return fmt.Errorf("device status %s, want %s", s, want)
		}
		return nil
	}
	return backoff.Retry(op, c.newBackOff())
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Microsecond
	b.MaxInterval = 50 * time.Millisecond
	b.MaxElapsedTime = c.timeout
	return b
}
