package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Frame writes rows between column rulers, each row prefixed with its
// 1-based number:
//
//	 |123456789|
//	-|---------|
//	1|.........|
//	-|---------|
//
// Columns past 9 wrap the ruler digit.
func Frame(w io.Writer, rows []string) error {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	label := len(strconv.Itoa(len(rows)))

	var ruler strings.Builder
	for x := range width {
		ruler.WriteByte(byte('0' + (x+1)%10))
	}
	border := strings.Repeat("-", width)

	var b strings.Builder
	fmt.Fprintf(&b, "%*s|%s|\n", label, "", ruler.String())
	fmt.Fprintf(&b, "%s|%s|\n", strings.Repeat("-", label), border)
	for y, row := range rows {
		fmt.Fprintf(&b, "%*d|%s|\n", label, y+1, row)
	}
	fmt.Fprintf(&b, "%s|%s|\n", strings.Repeat("-", label), border)

	_, err := io.WriteString(w, b.String())
	return err
}
