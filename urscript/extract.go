package urscript

import (
	"regexp"
	"strconv"
	"strings"
)

// JointCount - число осей манипулятора.
const JointCount = 6

// JointTarget - целевые углы шести суставов в радианах.
type JointTarget [JointCount]float64

// Slice возвращает углы как срез.
func (t JointTarget) Slice() []float64 {
	out := make([]float64, JointCount)
	copy(out, t[:])
	return out
}

// Clamp ограничивает каждый угол диапазоном [-JointLimit, JointLimit].
func (t JointTarget) Clamp() JointTarget {
	for i, v := range t {
		t[i] = clamp(v)
	}
	return t
}

// Распознаются только первые вхождения двух форм; это не разбор языка сценариев.
var (
	jointMovePattern = regexp.MustCompile(`movej\s*\(\s*\[\s*([-0-9., \t]+)\s*\]`)
	poseMovePattern  = regexp.MustCompile(`pose_trans\s*\(.*p\s*\[\s*([-0-9., \t]+)\s*\]`)
)

// Extract выводит целевые углы суставов из текста сценария, не выполняя его.
// Сначала ищется movej со списком углов (берутся первые шесть значений без изменений),
// затем pose_trans с позой p[x, y, z, rx, ry, rz], которая переводится эвристикой.
// Если ни одна форма не найдена или числа не разбираются, возвращается false.
func Extract(script string) (JointTarget, bool) {
	if m := jointMovePattern.FindStringSubmatch(script); m != nil {
		values, ok := parseNumbers(m[1])
		if !ok || len(values) < JointCount {
			return JointTarget{}, false
		}
		var target JointTarget
		copy(target[:], values[:JointCount])
		return target, true
	}

	if m := poseMovePattern.FindStringSubmatch(script); m != nil {
		values, ok := parseNumbers(m[1])
		if !ok {
			return JointTarget{}, false
		}
		pose, ok := PoseFromSlice(values)
		if !ok {
			return JointTarget{}, false
		}
		return ApproximateJoints(pose), true
	}

	return JointTarget{}, false
}

func parseNumbers(list string) ([]float64, bool) {
	parts := strings.Split(list, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, true
}
