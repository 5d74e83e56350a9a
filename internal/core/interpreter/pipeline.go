package interpreter

// Result carries either a value or the first error produced by a step chain.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a value in a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Fail wraps an error in a failed Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// Then applies f when r succeeded; a failed r short-circuits and f never runs.
func Then[T, U any](r Result[T], f func(T) Result[U]) Result[U] {
	if r.Err != nil {
		return Result[U]{Err: r.Err}
	}
	return f(r.Value)
}
