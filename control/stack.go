package control

// Stack holds the digit positions at which group separators are inserted.
// Positions are pushed in ascending order so the top is the leftmost
// boundary, which is the first one reached while writing digits.
type Stack []int

func (s *Stack) Push(pos int) {
	*s = append(*s, pos)
}

// Top returns the position on top of the stack.
func (s *Stack) Top() (pos int, ok bool) {
	if len(*s) == 0 {
		return 0, false
	}

	return (*s)[len(*s)-1], true
}

func (s *Stack) Pop() (err error) {
	if len(*s) == 0 {
		return Error.New("no position on stack")
	}

	*s = (*s)[:len(*s)-1]

	return nil
}
