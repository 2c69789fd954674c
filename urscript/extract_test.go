package urscript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_JointMove(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   JointTarget
	}{
		{
			name:   "exact six values",
			script: "movej([0.10,-0.20,0.30,-0.40,0.50,-0.60], a=0.4, v=1.05)",
			want:   JointTarget{0.10, -0.20, 0.30, -0.40, 0.50, -0.60},
		},
		{
			name:   "extra values are dropped",
			script: "movej([1, 2, 3, 0.5, 0.25, 0.125, 9, 9], a=0.4, v=1.05)",
			want:   JointTarget{1, 2, 3, 0.5, 0.25, 0.125},
		},
		{
			name:   "whitespace around brackets",
			script: "movej ( [ 0.5, 0, 0, 0, 0, 0 ] , a=0.4, v=1.05)",
			want:   JointTarget{0.5, 0, 0, 0, 0, 0},
		},
		{
			name:   "values outside joint limit are kept",
			script: "movej([4.0, -5.0, 0, 0, 0, 0])",
			want:   JointTarget{4.0, -5.0, 0, 0, 0, 0},
		},
		{
			name: "first match inside a full program",
			script: `def program():
    current_joints = get_actual_joint_positions()
    textmsg("Step 1: Moving base joint")
    movej([0.5, 0, 0, 0, 0, 0], a=0.4, v=1.05)
    sleep(1)
    movej([0.5, -0.5, 0, 0, 0, 0], a=0.4, v=1.05)
    movej(current_joints, a=0.4, v=1.05)
end
program()`,
			want: JointTarget{0.5, 0, 0, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.script)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_PoseHeuristic(t *testing.T) {
	got, ok := Extract("pose_trans(p[0, 2.0, -2.0, 0,0,0.5])")
	require.True(t, ok)

	want := []float64{0, 0.0, 0.2, 0.4, 1.0, 0.5}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "joint %d", i)
	}
}

func TestExtract_PoseInsideWrappedCall(t *testing.T) {
	got, ok := Extract("target = pose_trans(get_actual_tcp_pose(), p[0.1, 0.2, 0.3, 0, 0, -0.7])")
	require.True(t, ok)

	assert.InDelta(t, 0.1, got[0], 1e-9)
	assert.InDelta(t, -1.15, got[1], 1e-9)
	assert.InDelta(t, 1.35, got[2], 1e-9)
	assert.InDelta(t, -0.06, got[3], 1e-9)
	assert.InDelta(t, 0.1, got[4], 1e-9)
	assert.InDelta(t, -0.7, got[5], 1e-9)
}

func TestExtract_PoseIsAlwaysClamped(t *testing.T) {
	poses := [][]float64{
		{100, 100, 100, 0, 0, 100},
		{-100, -100, -100, 0, 0, -100},
		{3.2, -50, 20, 1, 1, 3.15},
		{0, 0, 1e6, 0, 0, 0},
	}
	for _, p := range poses {
		script := fmt.Sprintf("pose_trans(p[%f, %f, %f, %f, %f, %f])", p[0], p[1], p[2], p[3], p[4], p[5])
		got, ok := Extract(script)
		require.True(t, ok, script)
		for i, v := range got {
			assert.LessOrEqual(t, v, JointLimit, "%s joint %d", script, i)
			assert.GreaterOrEqual(t, v, -JointLimit, "%s joint %d", script, i)
		}
	}
}

func TestExtract_NoResult(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"empty", ""},
		{"no movement statements", "def program():\n    textmsg(\"hello\")\n    sleep(1)\nend\nprogram()"},
		{"joint list by variable", "movej(current_joints, a=0.4, v=1.05)"},
		{"non-numeric token", "movej([0.1, abc, 0.3, 0.4, 0.5, 0.6])"},
		{"malformed number", "movej([0.1, 0..2, 0.3, 0.4, 0.5, 0.6])"},
		{"empty slot", "movej([0.1,, 0.3, 0.4, 0.5, 0.6])"},
		{"fewer than six joints", "movej([0.1, 0.2, 0.3])"},
		{"short pose", "pose_trans(p[0.1, 0.2, 0.3])"},
		{"pose with bad number", "pose_trans(p[0.1, -, 0.3, 0, 0, 0])"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Extract(tt.script)
			assert.False(t, ok)
		})
	}
}

func TestExtract_JointMoveTakesPriorityOverPose(t *testing.T) {
	script := "pose_trans(p[0, 2.0, -2.0, 0, 0, 0.5])\nmovej([1, 1, 1, 1, 1, 1])"
	got, ok := Extract(script)
	require.True(t, ok)
	assert.Equal(t, JointTarget{1, 1, 1, 1, 1, 1}, got)
}

func TestJointTarget_Clamp(t *testing.T) {
	got := JointTarget{-10, 10, 3.14, -3.14, 0, 3.15}.Clamp()
	assert.Equal(t, JointTarget{-3.14, 3.14, 3.14, -3.14, 0, 3.14}, got)
}
