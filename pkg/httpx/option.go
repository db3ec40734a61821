package httpx

type Option func(*LoggingRoundTripper)

// WithLogFieldMaxLen truncates logged request and response dumps to n bytes.
func WithLogFieldMaxLen(n int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = n
	}
}

func WithSensitiveDataMasker(masker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = masker
	}
}

// WithoutBodyFor logs only the request line and headers for requests whose
// last path segment is one of methods, e.g. Bot API file uploads.
func WithoutBodyFor(methods ...string) Option {
	return func(rt *LoggingRoundTripper) {
		if rt.skipBody == nil {
			rt.skipBody = make(map[string]struct{}, len(methods))
		}
		for _, m := range methods {
			rt.skipBody[m] = struct{}{}
		}
	}
}
