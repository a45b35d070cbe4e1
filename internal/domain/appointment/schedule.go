package appointment

import (
	"fmt"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const DefaultSlotInterval = 30

// Schedule is a professional's validated working day:
// WorkStart < BreakStart <= BreakEnd < WorkEnd, and Interval divides the working span.
type Schedule struct {
	ProfessionalID string
	WorkStart      Clock
	WorkEnd        Clock
	BreakStart     Clock
	BreakEnd       Clock
	Interval       int
}

func NewSchedule(
	professionalID string,
	workStart, workEnd, breakStart, breakEnd string,
	interval int,
) (Schedule, error) {

	parse := func(field, v string) (Clock, error) {
		c, err := ParseClock(v)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not HH:mm", ErrConfiguration, field, v)
		}
		return c, nil
	}

	ws, err := parse("work_start", workStart)
	if err != nil {
		return Schedule{}, err
	}
	we, err := parse("work_end", workEnd)
	if err != nil {
		return Schedule{}, err
	}
	bs, err := parse("break_start", breakStart)
	if err != nil {
		return Schedule{}, err
	}
	be, err := parse("break_end", breakEnd)
	if err != nil {
		return Schedule{}, err
	}

	s := Schedule{
		ProfessionalID: professionalID,
		WorkStart:      ws,
		WorkEnd:        we,
		BreakStart:     bs,
		BreakEnd:       be,
		Interval:       interval,
	}
	if err := s.Validate(); err != nil {
		return Schedule{}, err
	}
	return s, nil
}

// ScheduleFromProfessional lê o expediente gravado no profissional.
func ScheduleFromProfessional(p *models.Professional, interval int) (Schedule, error) {
	return NewSchedule(p.ID, p.WorkStart, p.WorkEnd, p.BreakStart, p.BreakEnd, interval)
}

func (s Schedule) Validate() error {
	switch {
	case s.Interval <= 0:
		return fmt.Errorf("%w: slot interval must be positive, got %d", ErrConfiguration, s.Interval)
	case !(s.WorkStart < s.BreakStart):
		return fmt.Errorf("%w: break_start %s must be after work_start %s", ErrConfiguration, s.BreakStart, s.WorkStart)
	case !(s.BreakStart <= s.BreakEnd):
		return fmt.Errorf("%w: break_end %s must not be before break_start %s", ErrConfiguration, s.BreakEnd, s.BreakStart)
	case !(s.BreakEnd < s.WorkEnd):
		return fmt.Errorf("%w: break_end %s must be before work_end %s", ErrConfiguration, s.BreakEnd, s.WorkEnd)
	case s.WorkEnd > minutesPerDay:
		return fmt.Errorf("%w: work_end %s past midnight", ErrConfiguration, s.WorkEnd)
	case int(s.WorkEnd-s.WorkStart)%s.Interval != 0:
		return fmt.Errorf("%w: interval %d does not divide %s-%s", ErrConfiguration, s.Interval, s.WorkStart, s.WorkEnd)
	}
	return nil
}

// Candidates returns every slot start in [WorkStart, WorkEnd), ascending.
func (s Schedule) Candidates() []Clock {
	if s.Interval <= 0 {
		return nil
	}
	out := make([]Clock, 0, int(s.WorkEnd-s.WorkStart)/s.Interval)
	for c := s.WorkStart; c < s.WorkEnd; c += Clock(s.Interval) {
		out = append(out, c)
	}
	return out
}

// InBreak uses the half-open window [BreakStart, BreakEnd).
func (s Schedule) InBreak(c Clock) bool {
	return c >= s.BreakStart && c < s.BreakEnd
}

// Offers reports whether c is a bookable grid slot ignoring existing appointments.
func (s Schedule) Offers(c Clock) bool {
	if c < s.WorkStart || c >= s.WorkEnd {
		return false
	}
	if int(c-s.WorkStart)%s.Interval != 0 {
		return false
	}
	return !s.InBreak(c)
}
