package lox

func Map[T, R any](collection []T, iteratee func(item T) R) []R {
	result := make([]R, len(collection))

	for i, item := range collection {
		result[i] = iteratee(item)
	}

	return result
}

// Associate builds a map from collection. Later items win on duplicate keys.
func Associate[T any, K comparable, V any](collection []T, transform func(item T) (K, V)) map[K]V {
	result := make(map[K]V, len(collection))

	for _, item := range collection {
		k, v := transform(item)
		result[k] = v
	}

	return result
}
