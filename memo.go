package aoc

// Memoize wraps f so that results are stored in cache under key(arg).
// Arguments that map to the same key share one result, so key must capture
// everything f depends on. The caller owns cache and may share or inspect it.
//
// For recursive functions declare the variable first so the body can call
// the memoized version:
//
//	var fib func(int) int
//	fib = Memoize(map[int]int{}, Identity[int], func(n int) int { ... fib(n-1) ... })
func Memoize[A any, K comparable, V any](cache map[K]V, key func(A) K, f func(A) V) func(A) V {
	return func(a A) V {
		k := key(a)
		if v, ok := cache[k]; ok {
			return v
		}
		v := f(a)
		cache[k] = v
		return v
	}
}

// Identity is a key function for comparable arguments.
func Identity[T comparable](v T) T {
	return v
}
