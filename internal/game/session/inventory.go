package session

import (
	"slices"
	"strings"
)

// Inventory is an ordered list of carried item identifiers.
type Inventory struct {
	items []string
}

// NewInventory creates an empty Inventory.
func NewInventory() *Inventory {
	return &Inventory{}
}

// Add appends item after everything already carried.
func (inv *Inventory) Add(item string) {
	inv.items = append(inv.items, item)
}

// Contains reports whether item is carried.
func (inv *Inventory) Contains(item string) bool {
	return slices.Contains(inv.items, item)
}

// Items returns a copy of the carried items in acquisition order.
func (inv *Inventory) Items() []string {
	return slices.Clone(inv.items)
}

// Len returns the number of carried items.
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// String joins the items with ", ".
func (inv *Inventory) String() string {
	return strings.Join(inv.items, ", ")
}
