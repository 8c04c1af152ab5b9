package model

// Source tells where the data of a Result comes from
type Source string

const (
	SourceLive  Source = "live"
	SourceCache Source = "cache"
	SourceEmpty Source = "empty"
)

// Result is returned by every fetch instead of an error:
// live data, the cached snapshot, or nothing at all
type Result[T any] struct {
	Data   T
	Source Source
}

func Live[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceLive}
}

func Fallback[T any](data T) Result[T] {
	return Result[T]{Data: data, Source: SourceCache}
}

func Empty[T any]() Result[T] {
	var zero T
	return Result[T]{Data: zero, Source: SourceEmpty}
}

func (r Result[T]) IsEmpty() bool {
	return r.Source == SourceEmpty
}
