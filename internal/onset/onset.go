// Package onset finds percussive hits in audio.
package onset

import (
	"fmt"
	"math"

	"github.com/ingyamilmolinar/rsharp/internal/pcm"
)

// Onset is a detected hit. Strength is relative to the strongest hit in the
// same analysis, in 0..1.
type Onset struct {
	Time     float64
	Strength float64
}

// Detector finds onsets in a mono signal.
type Detector interface {
	Detect(samples []float64, sampleRate int) ([]Onset, error)
}

// EnergyDetector picks peaks of the positive frame-to-frame change in RMS
// energy. Durations are in seconds and converted to frames at the hop rate.
type EnergyDetector struct {
	Window int
	Hop    int
	// PreMax and PostMax bound the neighbourhood a peak must dominate.
	PreMax, PostMax float64
	// PreAvg and PostAvg bound the neighbourhood averaged for the threshold.
	PreAvg, PostAvg float64
	// Delta is added to the local mean to form the threshold.
	Delta float64
	// Wait is the minimum gap between two onsets.
	Wait float64
}

func NewEnergyDetector() *EnergyDetector {
	return &EnergyDetector{
		Window:  1024,
		Hop:     512,
		PreMax:  0.03,
		PostMax: 0.03,
		PreAvg:  0.1,
		PostAvg: 0.1,
		Delta:   0.07,
		Wait:    0.03,
	}
}

// Envelope returns the normalized onset strength per frame.
func (d *EnergyDetector) Envelope(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}
	n := 1
	if len(samples) > d.Window {
		n = 1 + (len(samples)-d.Window)/d.Hop
	}
	env := make([]float64, n)
	prev := 0.0
	peak := 0.0
	for i := range env {
		start := i * d.Hop
		end := min(start+d.Window, len(samples))
		sum := 0.0
		for _, s := range samples[start:end] {
			sum += s * s
		}
		rms := math.Sqrt(sum / float64(d.Window))
		env[i] = max(rms-prev, 0)
		prev = rms
		peak = max(peak, env[i])
	}
	if peak > 0 {
		for i := range env {
			env[i] /= peak
		}
	}
	return env
}

func (d *EnergyDetector) frames(sec float64, sampleRate int) int {
	return int(math.Round(sec * float64(sampleRate) / float64(d.Hop)))
}

func (d *EnergyDetector) Detect(samples []float64, sampleRate int) ([]Onset, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}
	if d.Window <= 0 || d.Hop <= 0 {
		return nil, fmt.Errorf("window %d and hop %d must be positive", d.Window, d.Hop)
	}
	env := d.Envelope(samples)
	preMax := max(d.frames(d.PreMax, sampleRate), 1)
	postMax := d.frames(d.PostMax, sampleRate)
	preAvg := d.frames(d.PreAvg, sampleRate)
	postAvg := d.frames(d.PostAvg, sampleRate)
	wait := d.frames(d.Wait, sampleRate)

	var onsets []Onset
	last := -wait - 1
	for i, v := range env {
		if v <= 0 || i-last <= wait {
			continue
		}
		if v < window(env, i-preMax, i+postMax, math.Max, 0) {
			continue
		}
		mean := window(env, i-preAvg, i+postAvg, func(a, b float64) float64 { return a + b }, 0)
		mean /= float64(min(i+postAvg, len(env)-1) - max(i-preAvg, 0) + 1)
		if v < mean+d.Delta {
			continue
		}
		onsets = append(onsets, Onset{Time: d.frameTime(i, sampleRate), Strength: v})
		last = i
	}
	return onsets, nil
}

// frameTime is the time at the centre of frame i.
func (d *EnergyDetector) frameTime(i, sampleRate int) float64 {
	return float64(i*d.Hop+d.Window/2) / float64(sampleRate)
}

// window folds f over env[lo..hi], clipped to the slice.
func window(env []float64, lo, hi int, f func(a, b float64) float64, acc float64) float64 {
	for j := max(lo, 0); j <= min(hi, len(env)-1); j++ {
		acc = f(acc, env[j])
	}
	return acc
}

// DetectFile runs d over the mono mix of a WAV file.
func DetectFile(path string, d Detector) ([]Onset, error) {
	clip, err := pcm.LoadWAV(path)
	if err != nil {
		return nil, err
	}
	return d.Detect(clip.Mono(), clip.SampleRate)
}
