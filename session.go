package njson

import (
	"bytes"
	"sync"
)

var sessionPool = sync.Pool{New: func() interface{} { return &session{} }}

// session holds the per-invocation scratch state: the normalize buffer
// and a pool of reusable split-result lists. Sessions are never shared
// across concurrently executing decode calls.
type session struct {
	buf   bytes.Buffer
	lists [][]string
	hooks ScannerHooks
}

func newSession(hooks ScannerHooks) *session {
	s := sessionPool.Get().(*session)
	s.hooks = hooks
	return s
}

func (s *session) release() {
	s.buf.Reset()
	s.hooks = nil
	sessionPool.Put(s)
}

func (s *session) parts() []string {
	if n := len(s.lists); n > 0 {
		list := s.lists[n-1]
		s.lists = s.lists[:n-1]
		return list[:0]
	}
	return make([]string, 0, 8)
}

func (s *session) recycle(list []string) {
	s.lists = append(s.lists, list)
}
