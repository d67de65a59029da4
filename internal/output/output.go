package output

import (
	"fmt"
	"io"
)

// NewLines writes count new lines into w.
func NewLines(w io.Writer, count int) {
	for i := 0; i < count; i++ {
		_, _ = fmt.Fprintln(w)
	}
}
