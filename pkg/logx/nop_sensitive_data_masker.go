package logx

// MaskerFunc adapts a plain function to SensitiveDataMaskerInterface.
type MaskerFunc func(input []byte) []byte

func (f MaskerFunc) Mask(input []byte) []byte {
	return f(input)
}

// NopMasker leaves the input untouched.
//
//nolint:gochecknoglobals
var NopMasker = MaskerFunc(func(input []byte) []byte { return input })
