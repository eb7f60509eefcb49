package header

// Flags is the packed object_flags field carried by V1 and V2 object
// headers. Only the low two bits are defined; the rest are reserved by the
// format and passed through unexamined.
type Flags uint32

const (
	// FlagTimeTenMics marks the object's raw timestamp as 10 microsecond
	// ticks.
	FlagTimeTenMics Flags = 0x1
	// FlagTimeOneNans marks the object's raw timestamp as already in
	// nanoseconds.
	FlagTimeOneNans Flags = 0x2
)

// HasTenMicsResolution reports whether the 10µs-tick timestamp flag is set.
func (f Flags) HasTenMicsResolution() bool {
	return f&FlagTimeTenMics != 0
}

// HasNanosResolution reports whether the 1ns-tick timestamp flag is set.
func (f Flags) HasNanosResolution() bool {
	return f&FlagTimeOneNans != 0
}

// NormalizeTimestamp converts a raw object_timestamp into nanoseconds
// according to the resolution bits in f: 10µs resolution multiplies by
// 10,000; 1ns resolution (or neither bit set) passes through unchanged.
func (f Flags) NormalizeTimestamp(raw uint64) uint64 {
	if f.HasTenMicsResolution() {
		return raw * 10_000
	}
	return raw
}

// TimestampStatus is the V2-only object_timestamp_status byte, describing
// the origin of the recorded timestamp.
type TimestampStatus uint8

const (
	// TimestampStatusOriginal marks a timestamp taken directly from the bus
	// hardware at capture time.
	TimestampStatusOriginal TimestampStatus = 0x01
	// TimestampStatusSoftwareHardware marks a timestamp synchronized between
	// software and hardware clocks.
	TimestampStatusSoftwareHardware TimestampStatus = 0x02
	// TimestampStatusUser marks a timestamp supplied by the user/application
	// rather than derived from the capture clock.
	TimestampStatusUser TimestampStatus = 0x10
)
