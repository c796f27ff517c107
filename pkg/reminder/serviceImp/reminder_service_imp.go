package serviceImp

import (
	"strings"
	"time"

	"cropcast/entities"
	"cropcast/pkg/apperr"
	"cropcast/pkg/reminder/repository"
	"cropcast/pkg/reminder/service"
)

type reminderSvc struct {
	r   repository.ReminderRepository
	now func() time.Time
}

func NewReminderService(r repository.ReminderRepository) service.ReminderService {
	return &reminderSvc{r: r, now: time.Now}
}

func (s *reminderSvc) List(uid string) ([]service.ReminderView, error) {
	list, err := s.r.ListByUser(uid)
	if err != nil {
		return nil, err
	}
	out := make([]service.ReminderView, 0, len(list))
	for _, m := range list {
		out = append(out, s.view(m))
	}
	return out, nil
}

func (s *reminderSvc) Create(m *entities.Reminder) (*service.ReminderView, error) {
	m.ID = ""
	m.Title = strings.TrimSpace(m.Title)
	m.ReminderDate = strings.TrimSpace(m.ReminderDate)
	if err := validate(m); err != nil {
		return nil, err
	}
	if err := s.r.Create(m); err != nil {
		return nil, err
	}
	v := s.view(*m)
	return &v, nil
}

func (s *reminderSvc) UpdatePartial(id, uid string, p service.ReminderPatch) (*service.ReminderView, error) {
	cur, err := s.r.FindByID(id, uid)
	if err != nil {
		return nil, apperr.NotFound(err)
	}
	if p.Title != nil {
		cur.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.ReminderDate != nil {
		cur.ReminderDate = strings.TrimSpace(*p.ReminderDate)
	}
	if p.IsCompleted != nil {
		cur.IsCompleted = *p.IsCompleted
	}
	if err := validate(cur); err != nil {
		return nil, err
	}
	if err := s.r.Update(cur); err != nil {
		return nil, err
	}
	v := s.view(*cur)
	return &v, nil
}

func (s *reminderSvc) Delete(id, uid string) error {
	return apperr.NotFound(s.r.Delete(id, uid))
}

func (s *reminderSvc) view(m entities.Reminder) service.ReminderView {
	today := s.now().Format(time.DateOnly)
	return service.ReminderView{Reminder: m, PastDue: !m.IsCompleted && m.ReminderDate < today}
}

func validate(m *entities.Reminder) error {
	if m.Title == "" {
		return apperr.Invalid("title is required")
	}
	if m.ReminderDate == "" {
		return apperr.Invalid("reminder_date is required")
	}
	if _, err := time.Parse(time.DateOnly, m.ReminderDate); err != nil {
		return apperr.Invalid("reminder_date must be YYYY-MM-DD")
	}
	return nil
}
