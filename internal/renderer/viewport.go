package renderer

// Viewport tracks which part of the buffer is on screen.
type Viewport struct {
	top    int // first visible buffer row
	left   int // first visible display column
	width  int
	height int
}

// Top returns the first visible buffer row.
func (v Viewport) Top() int {
	return v.top
}

// Left returns the first visible display column.
func (v Viewport) Left() int {
	return v.left
}

// Size returns the visible text area dimensions.
func (v Viewport) Size() (width, height int) {
	return v.width, v.height
}

// Resize sets the visible text area dimensions.
func (v *Viewport) Resize(width, height int) {
	v.width = max(width, 0)
	v.height = max(height, 0)
}

// ScrollToReveal scrolls the minimum amount so that (row, col) is visible.
// Returns true if the viewport moved.
func (v *Viewport) ScrollToReveal(row, col int) bool {
	top, left := v.top, v.left

	switch {
	case v.height == 0:
		v.top = row
	case row < v.top:
		v.top = row
	case row >= v.top+v.height:
		v.top = row - v.height + 1
	}

	// The column just past the last rune must stay reachable for the cursor.
	switch {
	case v.width == 0:
		v.left = col
	case col < v.left:
		v.left = col
	case col >= v.left+v.width:
		v.left = col - v.width + 1
	}

	v.top = max(v.top, 0)
	v.left = max(v.left, 0)
	return v.top != top || v.left != left
}
