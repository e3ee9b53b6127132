// Package clipboard provides the best-effort copy side channel.
//
// Copies are fire-and-forget: implementations never report failure and
// callers never wait on them.
package clipboard

import (
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"sync"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string)
}

// OSC52 copies by writing the terminal OSC 52 escape sequence to W.
//
// Terminals that support OSC 52 (xterm, iTerm2, kitty, tmux with
// set-clipboard on) put the payload on the system clipboard. Others ignore it.
type OSC52 struct {
	W io.Writer
}

// Copy writes ESC ] 52 ; c ; <base64> BEL. Write errors are logged and
// otherwise dropped.
func (o OSC52) Copy(text string) {
	if o.W == nil {
		return
	}
	seq := fmt.Sprintf("\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	if _, err := io.WriteString(o.W, seq); err != nil {
		log.Printf("clipboard: OSC 52 write failed: %v", err)
	}
}

// Discard drops every copy.
type Discard struct{}

// Copy does nothing.
func (Discard) Copy(string) {}

// Recorder keeps the copied texts in memory.
type Recorder struct {
	mu     sync.Mutex
	copies []string
}

// Copy appends text to the record.
func (r *Recorder) Copy(text string) {
	r.mu.Lock()
	r.copies = append(r.copies, text)
	r.mu.Unlock()
}

// Last returns the most recent copy, or "" if nothing was copied.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.copies) == 0 {
		return ""
	}
	return r.copies[len(r.copies)-1]
}

// Len returns the number of copies made.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.copies)
}
