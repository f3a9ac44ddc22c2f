package ulib

import (
	"runtime"

	"github.com/wingrew/thcore"
)

// GetTimeOfDay fills tv with the kernel's wall-clock pair. The
// timezone argument is forwarded verbatim; the test programs pass zero.
func (s *Shim) GetTimeOfDay(tv *TimeVal, tz int32) int32 {
	var pin runtime.Pinner
	defer pin.Unpin()
	return int32(s.k.Invoke(thcore.NR_gettimeofday, pinRef(&pin, tv), argi(tz)))
}

// GetTime returns wall-clock milliseconds as the test suite defines
// them: only the low 16 bits of the seconds field survive, so the
// value wraps roughly every 18 hours. The truncation is asserted by
// the suite and is kept as-is. Returns -1 when the clock read fails.
func (s *Shim) GetTime() int64 {
	var tv TimeVal
	if s.GetTimeOfDay(&tv, 0) != 0 {
		return -1
	}
	return (int64(tv.Sec)&0xffff)*1000 + int64(tv.Usec)/1000
}

// Sleep blocks for sec whole seconds, no sub-second precision. The
// request doubles as the remainder slot: when the wait is interrupted
// the remaining whole seconds come back, on completion zero.
func (s *Shim) Sleep(sec uint64) int64 {
	var pin runtime.Pinner
	defer pin.Unpin()
	tv := TimeVal{Sec: time_t(sec)}
	p := pinRef(&pin, &tv)
	if s.k.Invoke(thcore.NR_nanosleep, p, p) != 0 {
		return int64(tv.Sec)
	}
	return 0
}
