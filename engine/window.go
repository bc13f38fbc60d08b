package engine

import "math"

// window is a fixed-capacity FIFO of float64 samples. When full, pushing
// evicts the oldest sample. Index 0 is always the oldest retained sample.
type window struct {
	buf  []float64
	head int
	n    int
}

func newWindow(capacity int) *window {
	if capacity < 1 {
		capacity = 1
	}
	return &window{buf: make([]float64, capacity)}
}

func (w *window) push(v float64) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++
		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

func (w *window) len() int {
	return w.n
}

func (w *window) at(i int) float64 {
	if i < 0 || i >= w.n {
		panic("engine: window index out of range")
	}
	return w.buf[(w.head+i)%len(w.buf)]
}

func (w *window) mean() float64 {
	if w.n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < w.n; i++ {
		sum += w.at(i)
	}
	return sum / float64(w.n)
}

func (w *window) stddev() float64 {
	if w.n < 2 {
		return 0
	}
	m := w.mean()
	var sum float64
	for i := 0; i < w.n; i++ {
		d := w.at(i) - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(w.n))
}

// resize changes capacity, keeping the newest samples
func (w *window) resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(w.buf) {
		return
	}
	buf := make([]float64, capacity)
	keep := w.n
	if keep > capacity {
		keep = capacity
	}
	for i := 0; i < keep; i++ {
		buf[i] = w.at(w.n - keep + i)
	}
	w.buf = buf
	w.head = 0
	w.n = keep
}

func (w *window) clear() {
	w.head = 0
	w.n = 0
}

// intWindow is a fixed-capacity FIFO of ints (pitch history).
type intWindow struct {
	buf  []int
	head int
	n    int
}

func newIntWindow(capacity int) *intWindow {
	if capacity < 1 {
		capacity = 1
	}
	return &intWindow{buf: make([]int, capacity)}
}

func (w *intWindow) push(v int) {
	if w.n < len(w.buf) {
		w.buf[(w.head+w.n)%len(w.buf)] = v
		w.n++
		return
	}
	w.buf[w.head] = v
	w.head = (w.head + 1) % len(w.buf)
}

func (w *intWindow) len() int {
	return w.n
}

func (w *intWindow) at(i int) int {
	if i < 0 || i >= w.n {
		panic("engine: window index out of range")
	}
	return w.buf[(w.head+i)%len(w.buf)]
}

func (w *intWindow) resize(capacity int) {
	if capacity < 1 {
		capacity = 1
	}
	if capacity == len(w.buf) {
		return
	}
	buf := make([]int, capacity)
	keep := w.n
	if keep > capacity {
		keep = capacity
	}
	for i := 0; i < keep; i++ {
		buf[i] = w.at(w.n - keep + i)
	}
	w.buf = buf
	w.head = 0
	w.n = keep
}

func (w *intWindow) clear() {
	w.head = 0
	w.n = 0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// pitchClass maps a pitch index to 0-11 (C=0), ignoring octave
func pitchClass(pitch int) int {
	return ((pitch % 12) + 12) % 12
}
