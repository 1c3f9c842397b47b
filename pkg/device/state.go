package device

import "github.com/having11/IMU-Fidelity-with-Signaloid-C0-MicroSD/pkg/fsm"

const (
	// These represent states of one command lifecycle: the loop idles until
	// the host raises a command, calculates, lands in completed or rejected,
	// and returns to idle once the host clears the command register
	Idle        = fsm.State("idle")
	Calculating = fsm.State("calculating")
	Completed   = fsm.State("completed")
	Rejected    = fsm.State("rejected")
)

func newMachine() (*fsm.Machine, error) {
	return fsm.NewMachine(Idle, fsm.WithTransitions(
		fsm.T(Idle, Calculating),
		fsm.T(Calculating, Completed, Rejected),
		fsm.T(Completed, Idle),
		fsm.T(Rejected, Idle),
	))
}
