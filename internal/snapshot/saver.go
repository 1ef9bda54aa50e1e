package snapshot

import (
	"sync"

	"github.com/san-kum/automaton/internal/grid"
)

// Saver writes a snapshot every Every generations. With Background set the
// current buffer is copied and written on a separate goroutine.
type Saver struct {
	Every      int
	Path       string
	Background bool

	wg     sync.WaitGroup
	mu     sync.Mutex
	last   chan struct{}
	err    error
	writes int
}

// Due reports whether generation falls on the save cadence.
func (s *Saver) Due(generation int) bool {
	return s.Every > 0 && generation > 0 && generation%s.Every == 0
}

// Observe saves g if generation is due. It reports whether a save was started.
// Background failures surface on the next Observe or on Wait.
func (s *Saver) Observe(generation int, g *grid.Grid) (bool, error) {
	if err := s.takeErr(); err != nil {
		return false, err
	}
	if !s.Due(generation) {
		return false, nil
	}

	if !s.Background {
		if err := Write(g, s.Path); err != nil {
			return false, err
		}
		s.count()
		return true, nil
	}

	buf := g.Copy()
	prev, done := s.last, make(chan struct{})
	s.last = done

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)
		// an older generation must never land after a newer one
		if prev != nil {
			<-prev
		}
		err := WriteBuffer(buf, s.Path)

		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil {
			if s.err == nil {
				s.err = err
			}
			return
		}
		s.writes++
	}()
	return true, nil
}

// Wait blocks until background writes finish and returns the first failure.
func (s *Saver) Wait() error {
	s.wg.Wait()
	return s.takeErr()
}

// Writes returns the number of completed snapshots.
func (s *Saver) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func (s *Saver) count() {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
}

func (s *Saver) takeErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.err
	s.err = nil
	return err
}
