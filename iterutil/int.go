package iterutil

// IntIterator hands out consecutive integers starting right after its
// initial value.
type IntIterator struct {
	init int
	i    int
}

func Int(init int) IntIterator {
	return IntIterator{init: init, i: init}
}

func (i *IntIterator) Next() int {
	i.i++
	return i.i
}

// Reset restarts the sequence from the initial value.
func (i *IntIterator) Reset() {
	i.i = i.init
}
