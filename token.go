package jiebago

import "fmt"

// Token is one segmented word with its position in the input.
// Offsets are rune indices into the original paragraph, End exclusive,
// so End-Start always equals the rune length of Word.
type Token struct {
	Word  string
	Start int
	End   int
}

func (t Token) String() string {
	return fmt.Sprintf("[%s, %d, %d]", t.Word, t.Start, t.End)
}
