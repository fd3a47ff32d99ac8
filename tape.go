package halftone

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// tapeMagic identifies a frame tape stream. It precedes the compressed body.
var tapeMagic = []byte("HTAPE1")

// maxTapeDim bounds the per-axis dimensions a tape header may declare. A
// corrupt or hostile header must fail decoding, not drive a huge or
// overflowed allocation.
const maxTapeDim = 1 << 15

// TapeRecorder writes a sequence of raw frames as a compressed tape: the
// magic header, then a zstd stream of frames, each a little-endian
// width/height pair followed by the raw RGBA pixels. Tapes give demos and
// tests a deterministic, replayable stand-in for a live camera feed.
type TapeRecorder struct {
	zw *zstd.Encoder
}

// NewTapeRecorder starts a tape on w. Close must be called to flush the
// compressed stream.
func NewTapeRecorder(w io.Writer) (*TapeRecorder, error) {
	if _, err := w.Write(tapeMagic); err != nil {
		return nil, fmt.Errorf("halftone: write tape header: %w", err)
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return nil, fmt.Errorf("halftone: tape encoder: %w", err)
	}
	return &TapeRecorder{zw: zw}, nil
}

// WriteFrame appends one frame to the tape. Frames on a single tape may vary
// in dimensions; playback resizes the pipeline's working buffer accordingly.
func (r *TapeRecorder) WriteFrame(f Frame) error {
	if err := f.validate(); err != nil {
		return err
	}
	if f.Width > maxTapeDim || f.Height > maxTapeDim {
		return fmt.Errorf("halftone: frame dimensions %dx%d exceed the %d tape limit", f.Width, f.Height, maxTapeDim)
	}
	var hdr [8]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(f.Width))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(f.Height))
	if _, err := r.zw.Write(hdr[:]); err != nil {
		return fmt.Errorf("halftone: write tape frame: %w", err)
	}
	if _, err := r.zw.Write(f.Pix); err != nil {
		return fmt.Errorf("halftone: write tape frame: %w", err)
	}
	return nil
}

// Close flushes and closes the compressed stream. The underlying writer is
// not closed.
func (r *TapeRecorder) Close() error {
	if err := r.zw.Close(); err != nil {
		return fmt.Errorf("halftone: close tape: %w", err)
	}
	return nil
}

// TapeSource plays a recorded tape back as a FrameSource, delivering one
// frame per tick. With Loop set it restarts from the first frame after the
// last; otherwise it reports ErrNoFrame once exhausted.
type TapeSource struct {
	// Loop restarts playback from the beginning after the last frame.
	Loop bool

	frames []Frame
	cursor int
}

// NewTapeSource reads an entire tape from r into memory and returns a source
// playing it back. Decoding up front keeps NextFrame allocation-free on the
// refresh path.
func NewTapeSource(r io.Reader) (*TapeSource, error) {
	magic := make([]byte, len(tapeMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("halftone: read tape header: %w", err)
	}
	if string(magic) != string(tapeMagic) {
		return nil, fmt.Errorf("halftone: not a frame tape")
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("halftone: tape decoder: %w", err)
	}
	defer zr.Close()

	var frames []Frame
	for {
		var hdr [8]byte
		if _, err := io.ReadFull(zr, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("halftone: read tape frame: %w", err)
		}
		w := int(binary.LittleEndian.Uint32(hdr[0:]))
		h := int(binary.LittleEndian.Uint32(hdr[4:]))
		if w < 1 || h < 1 || w > maxTapeDim || h > maxTapeDim {
			return nil, fmt.Errorf("halftone: tape frame dimensions %dx%d out of range", w, h)
		}
		f := NewFrame(w, h)
		if _, err := io.ReadFull(zr, f.Pix); err != nil {
			return nil, fmt.Errorf("halftone: read tape frame: %w", err)
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("halftone: empty frame tape")
	}
	return &TapeSource{frames: frames}, nil
}

// Len returns the number of frames on the tape.
func (s *TapeSource) Len() int {
	return len(s.frames)
}

// Rewind resets playback to the first frame.
func (s *TapeSource) Rewind() {
	s.cursor = 0
}

// NextFrame returns the next recorded frame, or ErrNoFrame when the tape has
// run out and Loop is off.
func (s *TapeSource) NextFrame() (Frame, error) {
	if s.cursor >= len(s.frames) {
		if !s.Loop {
			return Frame{}, ErrNoFrame
		}
		s.cursor = 0
	}
	f := s.frames[s.cursor]
	s.cursor++
	return f, nil
}
