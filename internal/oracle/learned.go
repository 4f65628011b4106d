package oracle

import (
	"bytes"
	"encoding/gob"
	"math"
	"sync"

	"github.com/rsarvar1a/lits-engine/internal/board"
	"github.com/rsarvar1a/lits-engine/internal/tetromino"
)

// HiddenSize is the width of Learned's single hidden layer.
const HiddenSize = 128

// defaultLearningRate is the rate every Learned oracle trains with;
// it is not configurable.
const defaultLearningRate = 0.01

// weights holds every learnable parameter as flat slices so the whole
// set can be gob-encoded and persisted as a single blob.
type weights struct {
	W1 []float32 // HiddenSize x FeatureLength
	B1 []float32 // HiddenSize

	WP []float32 // HiddenSize x tetromino.Range
	BP []float32 // tetromino.Range

	WV []float32 // HiddenSize
	BV float32
}

func newWeights() *weights {
	w := &weights{
		W1: make([]float32, FeatureLength*HiddenSize),
		B1: make([]float32, HiddenSize),
		WP: make([]float32, HiddenSize*tetromino.Range),
		BP: make([]float32, tetromino.Range),
		WV: make([]float32, HiddenSize),
	}
	// Small fixed pseudo-random init so an untrained net isn't
	// perfectly symmetric; deterministic so runs are reproducible.
	seed := uint32(0x9E3779B9)
	next := func() float32 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		return (float32(seed%20000) - 10000) / 100000
	}
	for i := range w.W1 {
		w.W1[i] = next()
	}
	for i := range w.WP {
		w.WP[i] = next()
	}
	for i := range w.WV {
		w.WV[i] = next()
	}
	return w
}

func (w *weights) clone() *weights {
	cp := &weights{
		W1: append([]float32(nil), w.W1...),
		B1: append([]float32(nil), w.B1...),
		WP: append([]float32(nil), w.WP...),
		BP: append([]float32(nil), w.BP...),
		WV: append([]float32(nil), w.WV...),
		BV: w.BV,
	}
	return cp
}

// replaySample is one (position, outcome) pair accumulated by
// Remember for later training.
type replaySample struct {
	features [FeatureLength]float32
	outcome  float64
}

// Learned is a small dense policy/value network: one hidden layer
// with a clipped-ReLU activation feeding separate policy and value
// heads, in the same affine-then-clip shape the teacher's NNUE
// evaluator uses for its own feature transformer.
type Learned struct {
	mu           sync.Mutex
	w            *weights
	replay       []replaySample
	maxReplay    int
	learningRate float32
}

// NewLearned returns a freshly initialized learned oracle.
func NewLearned() *Learned {
	return &Learned{
		w:            newWeights(),
		maxReplay:    50000,
		learningRate: defaultLearningRate,
	}
}

// LoadLearned reconstructs a learned oracle from a serialized blob
// produced by Marshal.
func LoadLearned(data []byte) (*Learned, error) {
	var w weights
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&w); err != nil {
		return nil, err
	}
	return &Learned{w: &w, maxReplay: 50000, learningRate: defaultLearningRate}, nil
}

// Marshal serializes the net's weights for persistence.
func (l *Learned) Marshal() ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(l.w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clippedReLU(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func (l *Learned) forward(features [FeatureLength]float32) (hidden [HiddenSize]float32, policy [tetromino.Range]float32, value float32) {
	w := l.w

	for h := 0; h < HiddenSize; h++ {
		var sum float32 = w.B1[h]
		row := h * FeatureLength
		for i, f := range features {
			if f != 0 {
				sum += f * w.W1[row+i]
			}
		}
		hidden[h] = clippedReLU(sum)
	}

	for p := 0; p < tetromino.Range; p++ {
		var sum float32 = w.BP[p]
		for h := 0; h < HiddenSize; h++ {
			sum += hidden[h] * w.WP[h*tetromino.Range+p]
		}
		policy[p] = sum
	}

	var v float32 = w.BV
	for h := 0; h < HiddenSize; h++ {
		v += hidden[h] * w.WV[h]
	}
	value = float32(math.Tanh(float64(v)))

	return hidden, policy, value
}

// Predict runs the board through the network.
func (l *Learned) Predict(bd *board.Board) (Prediction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	features := Encode(bd)
	_, policy, value := l.forward(features)
	return Prediction{Policy: policy, Value: value}, nil
}

// Remember records a (position, outcome) pair for later training,
// evicting the oldest sample once the buffer is full.
func (l *Learned) Remember(bd *board.Board, outcome float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	sample := replaySample{features: Encode(bd), outcome: outcome}
	if len(l.replay) >= l.maxReplay {
		l.replay = l.replay[1:]
	}
	l.replay = append(l.replay, sample)
}

// Train performs one pass of gradient descent over the replay buffer
// against the value head only; the policy head's targets would be
// per-move visit distributions that the searcher does not currently
// hand back to Remember, so only value regression is trained here.
func (l *Learned) Train() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.replay) == 0 {
		return nil
	}

	for _, sample := range l.replay {
		hidden, _, value := l.forward(sample.features)
		target := float32(sample.outcome)

		// d/dv tanh(v) = 1 - tanh(v)^2; squared-error loss gradient.
		errTerm := (value - target) * (1 - value*value)

		for h := 0; h < HiddenSize; h++ {
			grad := errTerm * hidden[h]
			l.w.WV[h] -= l.learningRate * grad
		}
		l.w.BV -= l.learningRate * errTerm
	}

	return nil
}

// Copy returns an independent oracle sharing no mutable state: the
// weights are deep-copied and the replay buffer starts empty, since
// each worker accumulates its own experience.
func (l *Learned) Copy() Oracle {
	l.mu.Lock()
	defer l.mu.Unlock()

	return &Learned{
		w:            l.w.clone(),
		maxReplay:    l.maxReplay,
		learningRate: l.learningRate,
	}
}
