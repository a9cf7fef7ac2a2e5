package valuefile

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/tphakala/simd/f64"

	"github.com/tphakala/go-curve-minify/internal/mathutil"
)

// ErrInvalidWAV indicates a file that is not a readable PCM WAV file or a
// request for a channel it does not have.
var ErrInvalidWAV = errors.New("valuefile: invalid WAV")

// ErrUnsupportedBitDepth indicates a bit depth WriteWAV cannot encode.
var ErrUnsupportedBitDepth = errors.New("valuefile: unsupported bit depth")

// Supported bit depths
const (
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
)

// WAV format constants
const (
	wavFormatPCM = 1 // WAVE_FORMAT_PCM
	monoChannels = 1
)

// WAVInfo describes a decoded WAV file.
type WAVInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// LoadWAV reads one channel of a PCM WAV file. Sample i becomes the point
// (i, sample) with the integer PCM value as y.
func LoadWAV(path string, channel int) (*Table, error) {
	t, _, err := LoadWAVInfo(path, channel)
	return t, err
}

// LoadWAVInfo is LoadWAV that also returns the file format.
func LoadWAVInfo(path string, channel int) (*Table, *WAVInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer func() { _ = f.Close() }()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, nil, fmt.Errorf("%w: %s", ErrInvalidWAV, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrInvalidWAV, path, err)
	}

	info := &WAVInfo{
		SampleRate: int(decoder.SampleRate),
		Channels:   int(decoder.NumChans),
		BitDepth:   int(decoder.BitDepth),
	}
	if channel < 0 || channel >= info.Channels {
		return nil, nil, fmt.Errorf("%w: channel %d of %d", ErrInvalidWAV, channel, info.Channels)
	}

	frames := len(buf.Data) / info.Channels
	points := make([]mathutil.Point, frames)
	for i := range frames {
		points[i] = mathutil.Point{X: float64(i), Y: float64(buf.Data[i*info.Channels+channel])}
	}
	return &Table{Points: points}, info, nil
}

// WAVOptions configures WriteWAV.
type WAVOptions struct {
	SampleRate int
	BitDepth   int

	// Gain scales every value before rounding. Zero means 1.
	Gain float64
}

// WriteWAV writes ys as a mono PCM WAV file. Values are scaled by the
// gain, rounded half to even and clamped to the range of the bit depth.
// NaN values are written as 0.
func WriteWAV(path string, ys []float64, opts WAVOptions) error {
	maxVal, err := maxSampleValue(opts.BitDepth)
	if err != nil {
		return err
	}
	if opts.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", opts.SampleRate)
	}

	scaled := ys
	if opts.Gain != 0 && opts.Gain != 1 {
		scaled = make([]float64, len(ys))
		f64.Scale(scaled, ys, opts.Gain)
	}

	data := make([]int, len(scaled))
	for i, v := range scaled {
		data[i] = clampSample(v, maxVal)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	enc := wav.NewEncoder(out, opts.SampleRate, opts.BitDepth, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: monoChannels, SampleRate: opts.SampleRate},
		Data:           data,
		SourceBitDepth: opts.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write WAV data: %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return out.Close()
}

// maxSampleValue returns the largest sample value for the bit depth.
func maxSampleValue(bitDepth int) (float64, error) {
	switch bitDepth {
	case bitsPerSample16:
		return math.MaxInt16, nil
	case bitsPerSample24:
		return 1<<(bitsPerSample24-1) - 1, nil
	case bitsPerSample32:
		return math.MaxInt32, nil
	default:
		return 0, fmt.Errorf("%w: %d (expected 16, 24 or 32)", ErrUnsupportedBitDepth, bitDepth)
	}
}

// clampSample rounds v and clamps it to [-maxVal-1, maxVal].
func clampSample(v, maxVal float64) int {
	if math.IsNaN(v) {
		return 0
	}
	v = math.RoundToEven(v)
	if v > maxVal {
		return int(maxVal)
	}
	if v < -maxVal-1 {
		return int(-maxVal - 1)
	}
	return int(v)
}
