package halftone

import (
	"encoding/json"
	"fmt"
	"os"
)

// scriptStep represents a single action in a pipeline script.
type scriptStep struct {
	Action string  `json:"action"`
	Value  string  `json:"value,omitempty"`
	Name   string  `json:"name,omitempty"`
	Number float64 `json:"number,omitempty"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// pipelineScript is the top-level JSON structure for a script file.
type pipelineScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences configuration changes and snapshots across ticks for
// automated visual testing. Attach to a Pipeline via SetScriptRunner.
//
// Supported actions: "algorithm" (value: selector name), "palette" (name:
// catalog name), "size" (number), "brightness" (number), "contrast" (number),
// "snapshot" (label), and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pipeline script and returns a ScriptRunner ready
// to be attached via SetScriptRunner.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script pipelineScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a ScriptRunner to the pipeline. The runner's step
// method is called at the start of each tick, before frame processing, so
// config steps land before the pass they should affect.
func (p *Pipeline) SetScriptRunner(runner *ScriptRunner) {
	p.runner = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one tick. Config steps go through SetConfig as
// whole-record swaps; a bad step is reported to stderr and skipped rather
// than halting the script.
func (r *ScriptRunner) step(p *Pipeline) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	cfg := p.Config()
	switch st.Action {
	case "algorithm":
		algo, err := ParseAlgorithm(st.Value)
		if err != nil {
			r.report(err)
			break
		}
		cfg.Algorithm = algo
		r.apply(p, cfg)
	case "palette":
		pal, ok := PaletteByName(st.Name)
		if !ok {
			r.report(fmt.Errorf("halftone: unknown palette %q", st.Name))
			break
		}
		cfg.Palette = pal
		r.apply(p, cfg)
	case "size":
		cfg.BlockSize = int(st.Number)
		r.apply(p, cfg)
	case "brightness":
		cfg.Brightness = st.Number
		r.apply(p, cfg)
	case "contrast":
		cfg.Contrast = st.Number
		r.apply(p, cfg)
	case "snapshot":
		p.Snapshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	default:
		r.report(fmt.Errorf("halftone: unknown script action %q", st.Action))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *ScriptRunner) apply(p *Pipeline, cfg Config) {
	if err := p.SetConfig(cfg); err != nil {
		r.report(err)
	}
}

func (r *ScriptRunner) report(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "[halftone] script step %d: %v\n", r.cursor-1, err)
}
