package gpu

// Deleter is anything owning a GPU handle.
type Deleter interface {
	Delete()
}

// Releaser collects handles as they are acquired and deletes them in reverse
// order. A single deferred Release covers every exit path, including early
// error returns between acquisitions.
type Releaser struct {
	held []Deleter
}

// Hold registers d for release and returns it unchanged.
func Hold[T Deleter](r *Releaser, d T) T {
	r.held = append(r.held, d)
	return d
}

// Release deletes everything held, last acquired first. It can be called
// repeatedly; later calls only see handles acquired since.
func (r *Releaser) Release() {
	for i := len(r.held) - 1; i >= 0; i-- {
		r.held[i].Delete()
		r.held[i] = nil
	}
	r.held = r.held[:0]
}
