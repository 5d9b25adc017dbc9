package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/snoonan2/theory-extraCredit/internal/littleo"
	"github.com/snoonan2/theory-extraCredit/internal/viz"
)

// ErrNoInput is returned when the reader ends before an expression is read.
var ErrNoInput = errors.New("tui: no expression entered")

// RunPlain prints the menu, reads one line from in and writes the listing
// and footer to out.
func RunPlain(in io.Reader, out io.Writer, c *littleo.Classifier, s viz.Styles) error {
	fmt.Fprintf(out, "\n%s\n%s", viz.Menu(c.Catalog(), s), promptText)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			return ErrNoInput
		}
		return err
	}
	expr := strings.TrimRight(line, "\r\n")

	results := c.FindLittleO(expr)
	fmt.Fprintf(out, "\n%s\n", viz.Results(expr, results, s))
	if !littleo.IsError(results) {
		fmt.Fprint(out, viz.Footer(expr, s))
	}
	return nil
}
