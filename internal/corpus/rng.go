package corpus

import "math"

// Uniform is a source of draws in [0,1).
type Uniform interface {
	NextUniform() float64
}

// DefaultSeed fixes the published corpus order.
const DefaultSeed int32 = 1

var xorShiftBase = [4]int32{123456789, 362436069, 521288629, 88675123}

// XorShift is a 128-bit xorshift generator over four int32 words. Arithmetic
// wraps at 32 bits so the sequence is reproducible on every platform.
type XorShift struct {
	x, y, z, w int32
}

// NewXorShift seeds the generator: the seed is added to each base word, then
// four warm-up draws (scaled by 1e16, rounded, truncated to 32 bits) replace
// the state.
func NewXorShift(seed int32) *XorShift {
	r := &XorShift{
		x: xorShiftBase[0] + seed,
		y: xorShiftBase[1] + seed,
		z: xorShiftBase[2] + seed,
		w: xorShiftBase[3] + seed,
	}
	var warm [4]int32
	for k := range warm {
		warm[k] = int32(int64(roundHalfUp(float64(r.next()) / 0x7fffffff * 1e16)))
	}
	r.x, r.y, r.z, r.w = warm[0], warm[1], warm[2], warm[3]
	return r
}

// roundHalfUp rounds ties toward +Inf. Adding 0.5 before flooring is not
// equivalent: above 2^52 the sum itself rounds to even.
func roundHalfUp(v float64) float64 {
	f := math.Floor(v)
	if v-f >= 0.5 {
		f++
	}
	return f
}

func (r *XorShift) next() int32 {
	t := r.x ^ (r.x << 11)
	r.x, r.y, r.z = r.y, r.z, r.w
	r.w = r.w ^ (r.w >> 19) ^ (t ^ (t >> 8))
	return r.w
}

// NextUniform reads the next word as unsigned and scales it by 2^-32.
func (r *XorShift) NextUniform() float64 {
	return float64(uint32(r.next())) / (1 << 32)
}
