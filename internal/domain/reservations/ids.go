package reservations

import (
	"sync"
	"time"
)

// IDSource entrega ids basados en el reloj (ms unix), estrictamente crecientes
// dentro del proceso aunque dos reservas caigan en el mismo milisegundo.
type IDSource struct {
	mu   sync.Mutex
	last int64
}

func (s *IDSource) Next(now time.Time) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
