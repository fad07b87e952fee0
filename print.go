package kvring

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mgnsk/kvring/ringlist"
)

// Print writes the ring to standard output. See Fprint.
func (r *Ring[K, V]) Print() error {
	return r.Fprint(os.Stdout)
}

// Fprint writes one "K:<key> I:<value>" line per node to w starting at the anchor,
// or "Ring is empty." if the ring has no nodes.
func (r *Ring[K, V]) Fprint(w io.Writer) error {
	if r.list.Len() == 0 {
		_, err := fmt.Fprintln(w, "Ring is empty.")
		return err
	}

	var err error
	r.list.Do(func(e *ringlist.Element[entry[K, V]]) bool {
		_, err = fmt.Fprintf(w, "K:%v I:%v\n", e.Value.key, e.Value.value)
		return err == nil
	})

	return err
}

// String formats the ring as [k:v k:v] starting at the anchor.
func (r *Ring[K, V]) String() string {
	var b strings.Builder

	b.WriteByte('[')
	for k, v := range r.All() {
		if b.Len() > 1 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%v:%v", k, v)
	}
	b.WriteByte(']')

	return b.String()
}
