package options

// Option configures a value of type Cfg, applied via Apply.
type Option[Cfg any] interface {
	apply(Cfg) error
}

// Func wraps a plain function as an Option.
type Func[Cfg any] struct {
	applyFunc func(Cfg) error
}

func (f *Func[Cfg]) apply(target Cfg) error {
	return f.applyFunc(target)
}

// New builds an Option from a function that can fail.
func New[Cfg any](fn func(Cfg) error) *Func[Cfg] {
	return &Func[Cfg]{applyFunc: fn}
}

// Apply runs every opts against target in order, stopping at the first
// error.
func Apply[Cfg any](target Cfg, opts ...Option[Cfg]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError builds an Option from a function that can't fail — the common
// case for simple field-setter options.
func NoError[Cfg any](fn func(Cfg)) *Func[Cfg] {
	return &Func[Cfg]{
		applyFunc: func(target Cfg) error {
			fn(target)
			return nil
		},
	}
}
