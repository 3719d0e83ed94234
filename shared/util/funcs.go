package util

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Lerp realiza interpolação linear entre dois floats.
func Lerp(start, end, amount float32) float32 {
	return start + amount*(end-start)
}

// LerpVec interpola linearmente dois vetores 3D.
func LerpVec(start, end mgl32.Vec3, amount float32) mgl32.Vec3 {
	return start.Add(end.Sub(start).Mul(amount))
}

// DampFactor retorna o fator de interpolação independente de frame rate:
// 1 - exp(-rate * dt). Sempre em [0, 1).
func DampFactor(rate, dt float32) float32 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - float32(math.Exp(float64(-rate*dt)))
}

// Clamp limita v ao intervalo [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSq retorna a distância quadrada entre dois vetores 3D.
func DistSq(v1, v2 mgl32.Vec3) float32 {
	d := v1.Sub(v2)
	return d.Dot(d)
}

// Abs retorna o valor absoluto de um int32.
func Abs(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

// Max retorna o maior de dois int32.
func Max(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// Min retorna o menor de dois int32.
func Min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
