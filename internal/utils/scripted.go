package utils

// ScriptedSource replays fixed draws so tests can pin exact outcomes.
// Once a script runs out the last value repeats; an empty script yields 0.
type ScriptedSource struct {
	Floats []float64
	Ints   []int

	floatPos int
	intPos   int
}

// NewScriptedSource creates a source that returns floats in order
func NewScriptedSource(floats ...float64) *ScriptedSource {
	return &ScriptedSource{Floats: floats}
}

// Float64 returns the next scripted float
func (s *ScriptedSource) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	if s.floatPos >= len(s.Floats) {
		return s.Floats[len(s.Floats)-1]
	}
	v := s.Floats[s.floatPos]
	s.floatPos++
	return v
}

// Intn returns the next scripted int, reduced modulo n
func (s *ScriptedSource) Intn(n int) int {
	if len(s.Ints) == 0 || n <= 0 {
		return 0
	}
	var v int
	if s.intPos >= len(s.Ints) {
		v = s.Ints[len(s.Ints)-1]
	} else {
		v = s.Ints[s.intPos]
		s.intPos++
	}
	return v % n
}
