package render

// Order is the single ordered sequence of primitives representing the
// final draw order, first entry drawn first (farthest). Insertion at a
// position never reorders two already-placed primitives.
type Order struct {
	prims []Primitive
}

// NewOrder returns an empty order with room for n primitives.
func NewOrder(n int) *Order {
	return &Order{prims: make([]Primitive, 0, n)}
}

// Len returns the number of placed primitives.
func (o *Order) Len() int { return len(o.prims) }

// At returns the primitive at position i.
func (o *Order) At(i int) Primitive { return o.prims[i] }

// Items returns the underlying sequence in draw order.
func (o *Order) Items() []Primitive { return o.prims }

// Append places p after every existing primitive.
func (o *Order) Append(p Primitive) {
	o.prims = append(o.prims, p)
}

// Prepend places p before every existing primitive.
func (o *Order) Prepend(p Primitive) {
	o.InsertAt(0, p)
}

// InsertAt places p at position i, shifting later primitives back.
func (o *Order) InsertAt(i int, p Primitive) {
	o.prims = append(o.prims, nil)
	copy(o.prims[i+1:], o.prims[i:])
	o.prims[i] = p
}
