package willowxr

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// ---- Debug mode tests ------------------------------------------------------

func TestDebugMode_DisposedNodePanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	s.AddToWorld(parent)

	child := NewBox("child", 1, ColorWhite)
	child.Dispose()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on AddChild with disposed node, got none")
		}
		msg := fmt.Sprint(r)
		if !strings.Contains(msg, "disposed") {
			t.Errorf("panic message should mention 'disposed', got: %s", msg)
		}
	}()

	parent.AddChild(child)
}

func TestDebugMode_DisposedParentPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	parent := NewContainer("parent")
	parent.Dispose()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on AddChild to disposed parent")
		}
	}()
	parent.AddChild(NewContainer("child"))
}

func TestReleaseMode_DisposedNodeNoOp(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(false)

	child := NewContainer("child")
	child.Dispose()

	defer func() {
		if r := recover(); r != nil && strings.Contains(fmt.Sprint(r), "disposed") {
			t.Errorf("release mode should not panic about disposal, got: %v", r)
		}
	}()
	s.AddToWorld(child)
}

func TestDebugMode_TreeDepthWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	// Capture stderr output.
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	// Build a chain deeper than debugMaxTreeDepth (32).
	current := s.World()
	for i := 0; i < debugMaxTreeDepth+5; i++ {
		child := NewContainer(fmt.Sprintf("depth_%d", i))
		current.AddChild(child)
		current = child
	}

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "warning: tree depth") {
		t.Errorf("expected tree depth warning in stderr, got: %q", output)
	}
}

func TestDebugMode_ChildCountWarning(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	parent := NewContainer("many_children")
	s.AddToWorld(parent)

	for i := 0; i < debugMaxChildCount+1; i++ {
		parent.AddChild(NewContainer(fmt.Sprintf("c_%d", i)))
	}

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	output := buf.String()

	if !strings.Contains(output, "warning: node") || !strings.Contains(output, "children") {
		t.Errorf("expected child count warning in stderr, got: %q", output)
	}
}

func TestDebugLog_FrameStats(t *testing.T) {
	s := NewScene()
	s.SetLogOutput(nil)
	hands := NewSimulatedHands()
	ix := NewInteraction(s, hands, Config{Debug: true})
	defer s.SetDebugMode(false)

	var buf bytes.Buffer
	s.SetLogOutput(&buf)

	ix.Registry().Spawn(mgl64.Vec3{}, mgl64.QuatIdent())
	hands.SetFingertip(HandRight, mgl64.Vec3{0.01, 0, 0})
	hands.SetFingertip(HandLeft, mgl64.Vec3{-0.01, 0, 0})
	ix.HandlePinch(PinchEvent{Hand: HandRight, Kind: PinchStart})
	ix.HandlePinch(PinchEvent{Hand: HandLeft, Kind: PinchStart})
	ix.Tick(1.0 / 60)

	out := buf.String()
	for _, want := range []string{
		"[willowxr] right pinchstart: grabbed",
		"[willowxr] left pinchstart: coscale",
		"events: 2 | objects: 1",
		"scaling: 1.0000",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugf_SilentOutsideDebug(t *testing.T) {
	s := NewScene()
	var buf bytes.Buffer
	s.SetLogOutput(&buf)
	s.debugf("hidden %d", 1)
	s.debugLog(debugStats{eventCount: 3})
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
	s.logf("shown %d", 2)
	if buf.String() != "[willowxr] shown 2\n" {
		t.Errorf("logf = %q", buf.String())
	}
}
