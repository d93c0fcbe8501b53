package intake

import (
	"github.com/rs/zerolog"
)

// Service is the operator-facing surface of the intake queue. It forwards to
// the Queue and writes an audit event for every call. Names and conditions
// never reach the log.
type Service struct {
	queue  *Queue
	logger zerolog.Logger
}

func NewService(queue *Queue, logger zerolog.Logger) *Service {
	return &Service{queue: queue, logger: logger.With().Str("component", "intake").Logger()}
}

// Queue returns the underlying queue.
func (s *Service) Queue() *Queue {
	return s.queue
}

func (s *Service) Admit(name string, priority Priority, condition string) Patient {
	p := s.queue.Admit(name, priority, condition)
	s.logger.Info().
		Int("patient_id", p.ID).
		Int("priority", int(p.Priority)).
		Str("arrival_time", p.ArrivalTime).
		Int("waiting", s.queue.Len()).
		Msg("patient admitted")
	return p
}

// TreatNext returns false when the waiting room is empty. That is a normal
// outcome, logged at info level.
func (s *Service) TreatNext() (Patient, bool) {
	p, ok := s.queue.TreatNext()
	if !ok {
		s.logger.Info().Msg("no patients to treat")
		return Patient{}, false
	}
	s.logger.Info().
		Int("patient_id", p.ID).
		Int("priority", int(p.Priority)).
		Str("arrival_time", p.ArrivalTime).
		Int("waiting", s.queue.Len()).
		Int("treated", s.queue.Treated()).
		Msg("patient treated")
	return p, true
}

func (s *Service) ListWaiting() Listing {
	l := s.queue.Waiting()
	s.logger.Debug().Int("count", l.Count).Msg("listed waiting patients")
	return l
}

func (s *Service) ListHistory() Listing {
	l := s.queue.History()
	s.logger.Debug().Int("count", l.Count).Msg("listed treated patients")
	return l
}
