package willowxr

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHandStringAndOther(t *testing.T) {
	if HandLeft.String() != "left" || HandRight.String() != "right" {
		t.Errorf("names = %q, %q", HandLeft, HandRight)
	}
	if HandLeft.Other() != HandRight || HandRight.Other() != HandLeft {
		t.Error("Other should swap hands")
	}
	if Hand(5).String() != "unknown" {
		t.Errorf("Hand(5) = %q", Hand(5))
	}
}

func TestParseHand(t *testing.T) {
	tests := []struct {
		in   string
		want Hand
		ok   bool
	}{
		{"left", HandLeft, true},
		{"l", HandLeft, true},
		{"Right", HandRight, true},
		{"r", HandRight, true},
		{"", 0, false},
		{"both", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseHand(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseHand(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestEnumValues(t *testing.T) {
	// NodeType
	if NodeTypeContainer != 0 || NodeTypeAnchor != 1 || NodeTypeBox != 2 || NodeTypeSphere != 3 || NodeTypeModel != 4 {
		t.Error("NodeType values changed")
	}
	// EventType
	if EventSpawn != 0 || EventSqueeze != 7 {
		t.Error("EventType values changed")
	}
	// GrabState
	if GrabIdle != 0 || GrabHolding != 1 {
		t.Error("GrabState values changed")
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{NodeTypeAnchor.String(), "anchor"},
		{NodeTypeModel.String(), "model"},
		{EventScaleStart.String(), "scalestart"},
		{EventRelease.String(), "release"},
		{PinchStart.String(), "pinchstart"},
		{PinchEnd.String(), "pinchend"},
		{GrabHolding.String(), "holding"},
		{OutcomeCoScale.String(), "coscale"},
		{SqueezeStart.String(), "squeeze"},
		{HandModelMesh.String(), "mesh"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}

func TestColorWhite(t *testing.T) {
	if ColorWhite != (Color{1, 1, 1, 1}) {
		t.Errorf("ColorWhite = %v", ColorWhite)
	}
}

func TestIdentityPose(t *testing.T) {
	p := IdentityPose()
	if p.Position != (mgl64.Vec3{}) || p.Orientation != mgl64.QuatIdent() {
		t.Errorf("IdentityPose = %+v", p)
	}
}

func TestFiniteVec(t *testing.T) {
	if !finiteVec(mgl64.Vec3{1, -2, 3}) {
		t.Error("finite vector rejected")
	}
	if finiteVec(mgl64.Vec3{0, math.NaN(), 0}) || finiteVec(mgl64.Vec3{0, 0, math.Inf(-1)}) {
		t.Error("non-finite vector accepted")
	}
}
