package engine

// System is an interface that all tick systems must implement
type System interface {
	Name() string
	Update(w *World) error
	Priority() int // Lower values run first
}

// SystemFunc adapts a function to System with a fixed priority
type SystemFunc struct {
	Label string
	Fn    func(w *World) error
	Order int
}

func (s SystemFunc) Name() string {
	if s.Label == "" {
		return "func"
	}
	return s.Label
}

func (s SystemFunc) Update(w *World) error { return s.Fn(w) }

func (s SystemFunc) Priority() int { return s.Order }
