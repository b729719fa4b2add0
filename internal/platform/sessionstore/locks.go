package sessionstore

import "sync"

// Locks serializa read-modify-write por sesión. El load-then-save de una
// colección solo es seguro si nadie más escribe la misma sesión en el medio.
// El valor cero está listo para usar.
type Locks struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Lock bloquea la sesión y devuelve la función para liberarla.
func (l *Locks) Lock(sessionID string) (unlock func()) {
	l.mu.Lock()
	if l.held == nil {
		l.held = make(map[string]*lockEntry)
	}
	e, ok := l.held[sessionID]
	if !ok {
		e = &lockEntry{}
		l.held[sessionID] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.held, sessionID)
		}
		l.mu.Unlock()
	}
}

func (l *Locks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.held)
}
