package nonce

import (
	"strconv"
	"sync/atomic"
	"time"
)

// NanosecondNonce is a strictly increasing nonce seeded once from the wall clock
// in nanoseconds. It is never re-seeded, so values stay monotonic even when
// many requests are signed within the same clock tick.
type NanosecondNonce struct {
	current int64
}

// GetString returns the next nonce as a decimal string.
func (ng *NanosecondNonce) GetString() string {
	nonce := ng.GetInt64()
	return strconv.FormatInt(nonce, 10)
}

// GetInt64 increments the counter by one and returns the new value.
// The first call on a fresh generator returns seed + 1.
func (ng *NanosecondNonce) GetInt64() int64 {
	return atomic.AddInt64(&ng.current, 1)
}

// Current returns the last value handed out (or the seed if none has been).
func (ng *NanosecondNonce) Current() int64 {
	return atomic.LoadInt64(&ng.current)
}

func NewNanosecondNonce(now time.Time) *NanosecondNonce {
	return &NanosecondNonce{
		current: now.Unix()*int64(time.Second) + int64(now.Nanosecond()),
	}
}
