package encode

import (
	"math"
	"time"

	"github.com/stewi1014/oct/encio"
)

// Duration is a time.Duration codec.
// It is encoded as whole seconds in a uint64 followed by the remaining nanoseconds in a uint32.
// Negative durations cannot be encoded, and decoded durations must fit in a time.Duration;
// both fail with encio.TimeRangeError.
type Duration time.Duration

// Encode implements Encoder.
func (v Duration) Encode(out *encio.Output) error {
	if v < 0 {
		// two's complement negation in uint64 is exact for math.MinInt64
		abs := uint64(-int64(v))
		return encio.TimeRangeError{
			Secs:     abs / uint64(time.Second),
			Nanos:    uint32(abs % uint64(time.Second)),
			Negative: true,
		}
	}

	b, err := out.Reserve(12)
	if err != nil {
		return err
	}
	encio.EncodeUint64(b[:8], uint64(v/Duration(time.Second)))
	encio.EncodeUint32(b[8:], uint32(v%Duration(time.Second)))
	return nil
}

// Decode implements Decoder.
func (v *Duration) Decode(in *encio.Input) error {
	b, err := in.Read(12)
	if err != nil {
		return err
	}

	secs := encio.DecodeUint64(b[:8])
	nanos := encio.DecodeUint32(b[8:])

	const maxSecs = uint64(math.MaxInt64 / int64(time.Second))
	const maxNanos = uint32(math.MaxInt64 % int64(time.Second))
	if nanos >= uint32(time.Second) || secs > maxSecs || (secs == maxSecs && nanos > maxNanos) {
		return encio.TimeRangeError{Secs: secs, Nanos: nanos}
	}

	*v = Duration(secs)*Duration(time.Second) + Duration(nanos)
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Duration) MaxEncodedSize() int { return 12 }

// Time is a point in time, encoded as signed whole seconds since the Unix epoch.
// Sub-second precision and the location are not encoded; decoded times are in UTC.
type Time struct {
	time.Time
}

// Encode implements Encoder.
func (v Time) Encode(out *encio.Output) error { return I64(v.Unix()).Encode(out) }

// Decode implements Decoder.
func (v *Time) Decode(in *encio.Input) error {
	var secs I64
	if err := secs.Decode(in); err != nil {
		return err
	}
	v.Time = time.Unix(int64(secs), 0).UTC()
	return nil
}

// MaxEncodedSize implements SizedEncoder.
func (Time) MaxEncodedSize() int { return 8 }
