package window

// Iter lazily produces one window coefficient per call. The sequence is
// identical to the eager [Generator.Generate] output and can be
// restarted to replay it from the beginning.
type Iter struct {
	kind     Type
	length   int
	periodic bool
	index    int
}

// Next returns the next coefficient. The second return value is false
// once the sequence is exhausted.
func (it *Iter) Next() (float64, bool) {
	if it.index >= it.length {
		return 0, false
	}

	v := evalAt(it.kind, it.index, it.length, it.periodic)
	it.index++

	return v, true
}

// Len returns the total sequence length.
func (it *Iter) Len() int {
	return it.length
}

// Restart rewinds the iterator to the first coefficient.
func (it *Iter) Restart() {
	it.index = 0
}
