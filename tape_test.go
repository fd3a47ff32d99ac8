package halftone

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func recordTape(t *testing.T, frames ...Frame) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	rec, err := NewTapeRecorder(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range frames {
		if err := rec.WriteFrame(f); err != nil {
			t.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestTapeRoundTrip(t *testing.T) {
	a := rampFrame(8, 6)
	b := grayFrame(8, 6, 42)
	c := grayFrame(3, 5, 200) // dimensions may change mid-tape
	buf := recordTape(t, a, b, c)

	src, err := NewTapeSource(buf)
	if err != nil {
		t.Fatal(err)
	}
	if src.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", src.Len())
	}

	for i, want := range []Frame{a, b, c} {
		got, err := src.NextFrame()
		if err != nil {
			t.Fatalf("frame %d: %v", i, err)
		}
		if got.Width != want.Width || got.Height != want.Height {
			t.Fatalf("frame %d is %dx%d, want %dx%d", i, got.Width, got.Height, want.Width, want.Height)
		}
		if !bytes.Equal(got.Pix, want.Pix) {
			t.Errorf("frame %d pixels differ after round trip", i)
		}
	}

	if _, err := src.NextFrame(); !errors.Is(err, ErrNoFrame) {
		t.Errorf("NextFrame past end = %v, want ErrNoFrame", err)
	}
}

func TestTapeSourceLoop(t *testing.T) {
	buf := recordTape(t, grayFrame(2, 2, 10), grayFrame(2, 2, 20))
	src, err := NewTapeSource(buf)
	if err != nil {
		t.Fatal(err)
	}
	src.Loop = true

	var levels []byte
	for i := 0; i < 5; i++ {
		f, err := src.NextFrame()
		if err != nil {
			t.Fatal(err)
		}
		levels = append(levels, f.Pix[0])
	}
	want := []byte{10, 20, 10, 20, 10}
	for i := range want {
		if levels[i] != want[i] {
			t.Fatalf("loop sequence = %v, want %v", levels, want)
		}
	}
}

func TestTapeSourceRewind(t *testing.T) {
	buf := recordTape(t, grayFrame(2, 2, 10), grayFrame(2, 2, 20))
	src, err := NewTapeSource(buf)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := src.NextFrame(); err != nil {
		t.Fatal(err)
	}
	src.Rewind()
	f, err := src.NextFrame()
	if err != nil {
		t.Fatal(err)
	}
	if f.Pix[0] != 10 {
		t.Errorf("first frame after Rewind has level %d, want 10", f.Pix[0])
	}
}

func TestTapeErrors(t *testing.T) {
	t.Run("not a tape", func(t *testing.T) {
		if _, err := NewTapeSource(bytes.NewReader([]byte("PNGPNGPNG"))); err == nil {
			t.Error("NewTapeSource on junk = nil error, want failure")
		}
	})

	t.Run("truncated header", func(t *testing.T) {
		if _, err := NewTapeSource(bytes.NewReader([]byte("HT"))); err == nil {
			t.Error("NewTapeSource on truncated stream = nil error, want failure")
		}
	})

	t.Run("empty tape", func(t *testing.T) {
		buf := recordTape(t)
		if _, err := NewTapeSource(buf); err == nil {
			t.Error("NewTapeSource on empty tape = nil error, want failure")
		}
	})

	t.Run("absurd frame dimensions", func(t *testing.T) {
		// A tape whose frame header claims 2^31 x 2^31 pixels must be refused
		// outright; decoding it would demand an impossible allocation.
		var buf bytes.Buffer
		if _, err := buf.Write([]byte("HTAPE1")); err != nil {
			t.Fatal(err)
		}
		zw, err := zstd.NewWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		var hdr [8]byte
		binary.LittleEndian.PutUint32(hdr[0:], 1<<31)
		binary.LittleEndian.PutUint32(hdr[4:], 1<<31)
		if _, err := zw.Write(hdr[:]); err != nil {
			t.Fatal(err)
		}
		if err := zw.Close(); err != nil {
			t.Fatal(err)
		}
		if _, err := NewTapeSource(&buf); err == nil {
			t.Error("NewTapeSource with absurd dimensions = nil error, want failure")
		}
	})

	t.Run("oversized frame write", func(t *testing.T) {
		var buf bytes.Buffer
		rec, err := NewTapeRecorder(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if err := rec.WriteFrame(NewFrame(maxTapeDim+1, 1)); err == nil {
			t.Error("WriteFrame(oversized) = nil error, want failure")
		}
	})

	t.Run("malformed frame write", func(t *testing.T) {
		var buf bytes.Buffer
		rec, err := NewTapeRecorder(&buf)
		if err != nil {
			t.Fatal(err)
		}
		bad := Frame{Pix: make([]byte, 3), Width: 2, Height: 2}
		if err := rec.WriteFrame(bad); err == nil {
			t.Error("WriteFrame(malformed) = nil error, want failure")
		}
	})
}

func TestTapeDrivesPipeline(t *testing.T) {
	buf := recordTape(t, grayFrame(4, 4, 128), grayFrame(4, 4, 60))
	src, err := NewTapeSource(buf)
	if err != nil {
		t.Fatal(err)
	}

	p, err := NewPipeline(src, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	_ = p.Update()
	_ = p.Update()

	assertQuantized(t, p.Frame(), p.Config().Palette)
}
