// Package cart implements the in-memory shopping cart for a single
// browsing session. A cart holds one line per (product, size) selection;
// adding the same selection again raises its quantity instead of creating
// a duplicate line.
package cart

import "github.com/plugah603/plugah-api/catalog"

// Key identifies a cart line. Size is empty for products that are not
// sized.
type Key struct {
	ProductID string
	Size      string
}

type Line struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int    `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

func (l Line) Key() Key {
	return Key{ProductID: l.ProductID, Size: l.Size}
}

// Snapshot is the read-only state of the cart at checkout time.
type Snapshot struct {
	Lines []Line `json:"lines"`
	Total int    `json:"total"`
}

func (s Snapshot) Empty() bool {
	return len(s.Lines) == 0
}

// Cart accumulates selections in insertion order. It is owned by a single
// session and mutated synchronously, so it carries no locking.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the entry into the cart. If a line for the same
// (product, size) already exists its quantity is incremented, otherwise a
// new line with quantity 1 is appended. The size must already be chosen
// by the caller when the entry requires one.
func (c *Cart) Add(entry catalog.Entry, size string) {
	key := Key{ProductID: entry.ID, Size: size}
	if i := c.index(key); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		ProductID: entry.ID,
		Name:      entry.Name,
		UnitPrice: entry.Price,
		Quantity:  1,
		Size:      size,
	})
}

// AdjustQuantity applies delta to the line's quantity, flooring at 1.
// Decrementing at quantity 1 is a no-op: the decrement control is not a
// removal control, lines only leave the cart through Remove or Clear.
func (c *Cart) AdjustQuantity(key Key, delta int) {
	i := c.index(key)
	if i < 0 {
		return
	}
	q := c.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.lines[i].Quantity = q
}

// SetSize reassigns the line's size in place. If another line already
// holds the target (product, size) the two lines stay separate; they are
// not merged.
func (c *Cart) SetSize(key Key, size string) {
	i := c.index(key)
	if i < 0 {
		return
	}
	c.lines[i].Size = size
}

// Remove deletes the line unconditionally.
func (c *Cart) Remove(key Key) {
	i := c.index(key)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// Clear empties the cart. Called after a confirmed order submission.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total is recomputed from the current lines on every call.
func (c *Cart) Total() int {
	total := 0
	for _, l := range c.lines {
		total += l.UnitPrice * l.Quantity
	}
	return total
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Snapshot captures the lines and derived total for submission.
func (c *Cart) Snapshot() Snapshot {
	return Snapshot{Lines: c.Lines(), Total: c.Total()}
}

func (c *Cart) index(key Key) int {
	for i, l := range c.lines {
		if l.Key() == key {
			return i
		}
	}
	return -1
}
