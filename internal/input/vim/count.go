package vim

// CountState tracks the pending repeat count.
// Counts are a single digit 1-9; a new digit replaces the previous one.
type CountState struct {
	// Value is the pending count, or 0 if none.
	Value int
}

// Reset clears the count.
func (c *CountState) Reset() {
	c.Value = 0
}

// SetDigit replaces the count with the digit r.
// Returns false, leaving the count unchanged, unless r is '1' through '9'.
func (c *CountState) SetDigit(r rune) bool {
	if !IsCountDigit(r) {
		return false
	}
	c.Value = int(r - '0')
	return true
}

// Active returns true if a count is pending.
func (c *CountState) Active() bool {
	return c.Value > 0
}

// Get returns the effective count (1 if no count was specified).
func (c *CountState) Get() int {
	if c.Value <= 0 {
		return 1
	}
	return c.Value
}

// IsCountDigit returns true if the character can set a count.
// '0' is not a count digit; it is the line-start motion.
func IsCountDigit(r rune) bool {
	return r >= '1' && r <= '9'
}
