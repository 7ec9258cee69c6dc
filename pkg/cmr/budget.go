package cmr

// Budget tracks a fixed allowance of tolerated failures. It replaces the
// usual ad hoc error-counter loop: spend one unit per failure and stop
// when the allowance runs out.
type Budget struct {
	remaining int
}

// NewBudget returns a budget allowing n failures.
func NewBudget(n int) *Budget {
	return &Budget{remaining: n}
}

// Spend consumes one unit and reports whether the budget is exhausted.
func (b *Budget) Spend() bool {
	if b.remaining > 0 {
		b.remaining--
	}
	return b.remaining == 0
}

// Remaining returns the unspent allowance.
func (b *Budget) Remaining() int {
	return b.remaining
}
