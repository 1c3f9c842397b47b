package soc

import "fmt"

// OversizedRequest is returned when a request declares more samples than the
// MOSI buffer can hold
type OversizedRequest struct {
	Count uint32
	Max   uint32
}

func (e OversizedRequest) Error() string {
	return fmt.Sprintf("request declares %d samples, buffer holds at most %d", e.Count, e.Max)
}

// ShortBuffer is returned when a buffer image is too small for the layout it
// claims to contain
type ShortBuffer struct {
	Need int
	Have int
}

func (e ShortBuffer) Error() string {
	return fmt.Sprintf("buffer too short: need %d bytes, have %d", e.Need, e.Have)
}

// BadResponse is returned when the result-length field of a response does
// not describe a scalar float payload
type BadResponse struct {
	Length uint32
}

func (e BadResponse) Error() string {
	return fmt.Sprintf("unexpected result length %d", e.Length)
}
