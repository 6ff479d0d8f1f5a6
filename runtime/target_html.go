package runtime

import (
	"io"
	"sync"

	"github.com/vcrobe/userwidgets/console"
	"github.com/vcrobe/userwidgets/vdom"
)

// HTMLTarget writes each committed tree to W as one line of HTML.
// Consecutive identical snapshots are written once.
type HTMLTarget struct {
	W io.Writer

	mu   sync.Mutex
	last string
}

// Commit serializes next and writes it if it differs from the previous snapshot.
func (t *HTMLTarget) Commit(prev, next *vdom.VNode) {
	out := vdom.HTML(next)

	t.mu.Lock()
	defer t.mu.Unlock()
	if out == t.last {
		return
	}
	t.last = out
	if _, err := io.WriteString(t.W, out+"\n"); err != nil {
		console.Error("writing snapshot:", err.Error())
	}
}
