package glide

import "testing"

func TestLoadScriptJSON(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "snapshot", "label": "initial"},
			{"action": "down", "id": 3, "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "snapshot", "label": "after"}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "snapshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if st := runner.steps[1]; st.Action != "down" || st.ID != 3 || st.X != 100 || st.Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadScriptYAML(t *testing.T) {
	data := []byte(`
steps:
  - action: drag
    fromX: 100
    fromY: 100
    toX: 300
    toY: 150
    frames: 8
  - action: pinch
    x: 400
    y: 300
    fromDist: 100
    toDist: 50
    frames: 6
  - action: settle
`)
	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(runner.steps))
	}
	if st := runner.steps[0]; st.ToX != 300 || st.ToY != 150 || st.Frames != 8 {
		t.Errorf("drag step = %+v", st)
	}
	if st := runner.steps[1]; st.FromDist != 100 || st.ToDist != 50 {
		t.Errorf("pinch step = %+v", st)
	}
}

func TestLoadScriptInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{"steps": [`},
		{"bad yaml", "steps: [action: 1: 2"},
		{"empty", `{"steps": []}`},
		{"nothing", ""},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptRunnerDragAndSettle(t *testing.T) {
	runner, err := LoadScript([]byte(`
steps:
  - action: snapshot
    label: start
  - action: drag
    fromX: 400
    fromY: 300
    toX: 500
    toY: 300
    frames: 10
  - action: settle
  - action: snapshot
    label: end
`))
	if err != nil {
		t.Fatal(err)
	}
	sim := newSim(t)
	if err := runner.Run(sim, 2000); err != nil {
		t.Fatal(err)
	}
	if !runner.Done() {
		t.Fatal("runner should be done")
	}

	snaps := runner.Snapshots()
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if snaps[0].Label != "start" || snaps[0].Transform != (Transform{X: 400, Y: 300, Scale: 1}) {
		t.Errorf("start snapshot = %+v", snaps[0])
	}
	end := snaps[1]
	if end.Label != "end" || !end.Settled || end.State != GestureIdle {
		t.Errorf("end snapshot = %+v", end)
	}
	if end.Transform.X <= 450 {
		t.Errorf("end X = %v, want content dragged right", end.Transform.X)
	}
	if end.Frame <= snaps[0].Frame {
		t.Error("end snapshot should be taken on a later frame")
	}
}

func TestScriptRunnerWait(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "snapshot"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	sim := newSim(t)
	if err := runner.Run(sim, 100); err != nil {
		t.Fatal(err)
	}
	if got := runner.Snapshots()[0].Frame; got != 5 {
		t.Errorf("snapshot frame = %d, want 5", got)
	}
}

func TestScriptRunnerFrameLimit(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait", "frames": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if err := runner.Run(newSim(t), 10); err == nil {
		t.Error("expected frame limit error")
	}
}
