package soc

import (
	"encoding/binary"
	"math"
)

// Request layout in the MOSI buffer:
//
//	offset 0 : uint32  sampleCount
//	offset 4 : float32[sampleCount] samples
//
// Response layout in the MISO buffer:
//
//	offset 0 : uint32  resultByteLength
//	offset 4 : result payload (one float32, the weighted mean)
//
// All fields are little endian, matching the wire format the host
// application packs with struct.pack("<I") / struct.pack("<f").

// EncodeRequest packs a sample window for the MOSI buffer
func EncodeRequest(samples []float32) ([]byte, error) {
	if len(samples) > MaxSamples {
		return nil, OversizedRequest{Count: uint32(len(samples)), Max: MaxSamples}
	}
	out := make([]byte, countFieldSizeBytes+len(samples)*sampleSizeBytes)
	binary.LittleEndian.PutUint32(out[0:], uint32(len(samples)))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[countFieldSizeBytes+i*sampleSizeBytes:], math.Float32bits(s))
	}
	return out, nil
}

// DecodeRequest unpacks the sample window from a MOSI buffer image.  The
// declared count is checked against both the buffer capacity and the bytes
// actually present before any sample is read, so an oversized count can
// never read past the buffer.
func DecodeRequest(buf []byte) ([]float32, error) {
	if len(buf) < countFieldSizeBytes {
		return nil, ShortBuffer{Need: countFieldSizeBytes, Have: len(buf)}
	}
	count := binary.LittleEndian.Uint32(buf[0:])
	if count > MaxSamples {
		return nil, OversizedRequest{Count: count, Max: MaxSamples}
	}
	need := countFieldSizeBytes + int(count)*sampleSizeBytes
	if len(buf) < need {
		return nil, ShortBuffer{Need: need, Have: len(buf)}
	}
	samples := make([]float32, count)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(buf[countFieldSizeBytes+i*sampleSizeBytes:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}

// EncodeResponse packs a scalar result for the MISO buffer: the byte length
// of the payload followed by the payload itself
func EncodeResponse(result float32) []byte {
	out := make([]byte, countFieldSizeBytes+sampleSizeBytes)
	binary.LittleEndian.PutUint32(out[0:], sampleSizeBytes)
	binary.LittleEndian.PutUint32(out[countFieldSizeBytes:], math.Float32bits(result))
	return out
}

// DecodeResponse unpacks the scalar result from a MISO buffer image
func DecodeResponse(buf []byte) (float32, error) {
	if len(buf) < countFieldSizeBytes {
		return 0, ShortBuffer{Need: countFieldSizeBytes, Have: len(buf)}
	}
	length := binary.LittleEndian.Uint32(buf[0:])
	if length != sampleSizeBytes {
		return 0, BadResponse{Length: length}
	}
	need := countFieldSizeBytes + int(length)
	if len(buf) < need {
		return 0, ShortBuffer{Need: need, Have: len(buf)}
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(buf[countFieldSizeBytes:])), nil
}

// ResponseLength reads only the result-length field of a MISO buffer image.
// Useful for checking that a rejected command left the buffer untouched.
func ResponseLength(buf []byte) uint32 {
	if len(buf) < countFieldSizeBytes {
		return 0
	}
	return binary.LittleEndian.Uint32(buf[0:])
}
