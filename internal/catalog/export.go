package catalog

import (
	"bufio"
	"fmt"
	"io"
)

// ExportText writes the full built-in catalog as plain text:
//
//	Physics:
//	  Speed of Light: 299,792,458 m/s
//	  ...
//	<blank line>
//
// Custom constants are not included.
func (s *Store) ExportText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, c := range s.categories {
		fmt.Fprintf(bw, "%s:\n", c.Name)
		for _, e := range c.Entries {
			fmt.Fprintf(bw, "  %s: %s\n", e.Name, e.Value)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}
