package types

// Equaler is implemented by values with structural equality.
type Equaler[T any] interface {
	Equal(T) bool
}

// List is an ordered repeated container. Order is document order after
// decoding and insertion order otherwise; nothing reorders it.
//
// Position 0 is the default item, the value most callers care about when
// only one locale is in play.
type List[T Equaler[T]] []T

// Default returns the item at position 0, if any.
func (l List[T]) Default() (T, bool) {
	if len(l) == 0 {
		var zero T
		return zero, false
	}
	return l[0], true
}

// SetDefault replaces the item at position 0, or appends v when the list is empty.
func (l *List[T]) SetDefault(v T) {
	if len(*l) == 0 {
		*l = append(*l, v)
		return
	}
	(*l)[0] = v
}

// Append adds items to the end of the list.
func (l *List[T]) Append(items ...T) {
	*l = append(*l, items...)
}

func (l List[T]) Len() int {
	return len(l)
}

// Equal compares element-wise in order. A nil list equals an empty one.
func (l List[T]) Equal(o List[T]) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if !l[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// PtrEqual compares two optional entities: both nil are equal, one nil is not,
// otherwise the entities' own Equal decides.
func PtrEqual[T Equaler[T]](a, b *T) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return (*a).Equal(*b)
}
