package urscript

import (
	"github.com/golang/geo/r3"
)

// Коэффициенты эвристического преобразования позы TCP в углы суставов.
// Подобраны эмпирически и не выводятся из геометрии манипулятора:
// это не обратная кинематика.
const (
	ShoulderOffset = -1.0
	ShoulderZGain  = -0.5
	ElbowOffset    = 1.2
	ElbowZGain     = 0.5
	Wrist1ZGain    = -0.2
	Wrist2YGain    = 0.5

	// JointLimit ограничивает каждый угол диапазоном [-JointLimit, JointLimit] радиан.
	JointLimit = 3.14
)

// Pose - декартова поза TCP: положение и вектор поворота.
type Pose struct {
	Position r3.Vector
	Rotation r3.Vector
}

// PoseFromSlice собирает позу из [x, y, z, rx, ry, rz].
func PoseFromSlice(v []float64) (Pose, bool) {
	if len(v) < JointCount {
		return Pose{}, false
	}
	return Pose{
		Position: r3.Vector{X: v[0], Y: v[1], Z: v[2]},
		Rotation: r3.Vector{X: v[3], Y: v[4], Z: v[5]},
	}, true
}

// ApproximateJoints приближенно переводит позу в углы суставов и ограничивает результат.
func ApproximateJoints(p Pose) JointTarget {
	x, y, z := p.Position.X, p.Position.Y, p.Position.Z
	target := JointTarget{
		x,
		ShoulderOffset + ShoulderZGain*z,
		ElbowOffset + ElbowZGain*z,
		Wrist1ZGain * z,
		Wrist2YGain * y,
		p.Rotation.Z,
	}
	return target.Clamp()
}

func clamp(v float64) float64 {
	if v > JointLimit {
		return JointLimit
	}
	if v < -JointLimit {
		return -JointLimit
	}
	return v
}
