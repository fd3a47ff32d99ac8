package halftone

import "testing"

func TestLoadScript(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"valid", `{"steps":[{"action":"wait","frames":2}]}`, false},
		{"bad json", `{"steps":`, true},
		{"no steps", `{"steps":[]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScript([]byte(tt.json))
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadScript = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScriptRunnerSequence(t *testing.T) {
	script := `{"steps":[
		{"action":"algorithm","value":"atkinson"},
		{"action":"size","number":3},
		{"action":"wait","frames":2},
		{"action":"palette","name":"gameboy"},
		{"action":"brightness","number":0.25},
		{"action":"contrast","number":1.5}
	]}`
	runner, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}

	src := &stubSource{}
	for i := 0; i < 16; i++ {
		src.frames = append(src.frames, grayFrame(4, 4, 128))
	}
	p := newTestPipeline(t, src)
	p.SetScriptRunner(runner)

	// Tick 1: algorithm step lands before this tick's pass.
	_ = p.Update()
	if got := p.Config().Algorithm; got != AlgorithmAtkinson {
		t.Errorf("after tick 1: algorithm = %v, want atkinson", got)
	}

	// Tick 2: size step.
	_ = p.Update()
	if got := p.Config().BlockSize; got != 3 {
		t.Errorf("after tick 2: block size = %d, want 3", got)
	}

	// Ticks 3-4: waiting; nothing changes.
	_ = p.Update()
	_ = p.Update()
	if got := p.Config().BlockSize; got != 3 {
		t.Errorf("during wait: block size = %d, want 3", got)
	}
	if runner.Done() {
		t.Error("runner done during wait, want pending steps")
	}

	// Ticks 5-7: palette, brightness, contrast.
	_ = p.Update()
	_ = p.Update()
	_ = p.Update()
	cfg := p.Config()
	if len(cfg.Palette) != 4 {
		t.Errorf("palette has %d colors, want gameboy's 4", len(cfg.Palette))
	}
	if cfg.Brightness != 0.25 || cfg.Contrast != 1.5 {
		t.Errorf("adjustments = (%v, %v), want (0.25, 1.5)", cfg.Brightness, cfg.Contrast)
	}
	if !runner.Done() {
		t.Error("runner not done after all steps")
	}
}

func TestScriptRunnerSkipsBadSteps(t *testing.T) {
	script := `{"steps":[
		{"action":"algorithm","value":"no-such"},
		{"action":"palette","name":"no-such"},
		{"action":"size","number":0},
		{"action":"frobnicate"},
		{"action":"size","number":2}
	]}`
	runner, err := LoadScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}

	src := &stubSource{}
	for i := 0; i < 8; i++ {
		src.frames = append(src.frames, grayFrame(4, 4, 128))
	}
	p := newTestPipeline(t, src)
	p.SetScriptRunner(runner)

	for i := 0; i < 6; i++ {
		_ = p.Update()
	}

	cfg := p.Config()
	if cfg.Algorithm != AlgorithmOrdered {
		t.Errorf("algorithm = %v, want unchanged ordered", cfg.Algorithm)
	}
	if cfg.BlockSize != 2 {
		t.Errorf("block size = %d, want 2 from the one valid step", cfg.BlockSize)
	}
	if !runner.Done() {
		t.Error("runner not done after consuming all steps")
	}
}

func TestScriptRunnerSnapshotStep(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps":[{"action":"snapshot","label":"checkpoint"}]}`))
	if err != nil {
		t.Fatal(err)
	}

	src := &stubSource{frames: []Frame{grayFrame(4, 4, 128)}}
	p := newTestPipeline(t, src)
	p.SnapshotDir = t.TempDir()
	p.SetScriptRunner(runner)

	_ = p.Update()
	if !runner.Done() {
		t.Error("runner not done after snapshot step")
	}
	assertSnapshotCount(t, p.SnapshotDir, 1)
}
