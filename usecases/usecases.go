package usecases

type Usecases struct {
	appName string
}

type Option func(*Usecases)

func WithAppName(appName string) Option {
	return func(u *Usecases) {
		u.appName = appName
	}
}

func NewUsecases(opts ...Option) Usecases {
	u := Usecases{
		appName: "exprc",
	}
	for _, opt := range opts {
		opt(&u)
	}
	return u
}

func (usecases *Usecases) NewCompilerUsecase() CompilerUsecase {
	return CompilerUsecase{}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{}
}
