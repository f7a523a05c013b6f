package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/slotengine"
)

// Planner связывает доменные сущности с движком слотов
// Все даты и время движка считаются в часовом поясе планирования loc
type Planner struct {
	engine *slotengine.Engine
	loc    *time.Location
}

// NewPlanner создает планировщик поверх движка слотов
func NewPlanner(engine *slotengine.Engine, loc *time.Location) *Planner {
	if loc == nil {
		loc = time.UTC
	}
	return &Planner{engine: engine, loc: loc}
}

// Location возвращает часовой пояс планирования
func (p *Planner) Location() *time.Location {
	return p.loc
}

// Today возвращает текущую календарную дату в часовом поясе планирования
func (p *Planner) Today(now time.Time) slotengine.Date {
	return slotengine.DateOf(now.In(p.loc))
}

// Now возвращает текущий момент, округленный вверх до минуты
func (p *Planner) Now(now time.Time) slotengine.Moment {
	return slotengine.FromTimeCeil(now.In(p.loc))
}

// InHorizon проверяет, что дата попадает в [сегодня, сегодня+горизонт)
func (p *Planner) InHorizon(date slotengine.Date, now time.Time) bool {
	days := p.Today(now).DaysUntil(date)
	return days >= 0 && days < p.engine.Horizon()
}

// AvailableDays возвращает даты горизонта, в которые у хоста есть окна
func (p *Planner) AvailableDays(availability []*domain.Availability, now time.Time) []slotengine.Date {
	return p.engine.ComputeAvailableDays(Windows(availability), p.Today(now))
}

// DayRange возвращает границы даты [00:00, 00:00 следующего дня) в часовом поясе планирования
// Слоты даты учитывают только бронирования, начинающиеся в этом интервале
func (p *Planner) DayRange(date slotengine.Date) (time.Time, time.Time) {
	return date.At(0).Time(p.loc), date.AddDays(1).At(0).Time(p.loc)
}

// Slots вычисляет все кандидаты на дату (доступные и занятые) для окон нужного дня недели
func (p *Planner) Slots(
	date slotengine.Date,
	availability []*domain.Availability,
	bookings []*domain.Booking,
	et *domain.EventType,
	now time.Time,
) ([]slotengine.Slot, error) {
	windows := slotengine.WindowsForDay(Windows(availability), date.Weekday())
	return p.engine.ComputeSlotsForDay(date, windows, Bookings(StartingOn(bookings, date, p.loc), p.loc), Params(et), p.Now(now))
}

// AvailableTimes оставляет свободные слоты, убирает дубликаты пересекающихся окон
// и сортирует по времени
func AvailableTimes(slots []slotengine.Slot) []string {
	seen := make(map[int]struct{}, len(slots))
	minutes := make([]int, 0, len(slots))

	for _, s := range slotengine.AvailableOnly(slots) {
		if _, ok := seen[s.Start.Minute]; ok {
			continue
		}
		seen[s.Start.Minute] = struct{}{}
		minutes = append(minutes, s.Start.Minute)
	}

	sort.Ints(minutes)

	times := make([]string, 0, len(minutes))
	for _, m := range minutes {
		times = append(times, slotengine.Moment{Minute: m}.Clock())
	}
	return times
}

// Lookup ищет кандидата с началом в minute
// found - время является кандидатом, available - хотя бы один такой кандидат свободен
func Lookup(slots []slotengine.Slot, minute int) (found bool, available bool) {
	for _, s := range slots {
		if s.Start.Minute != minute {
			continue
		}
		found = true
		if s.Available {
			return true, true
		}
	}
	return found, false
}

// StartingOn оставляет бронирования, начало которых приходится на дату в часовом поясе loc
func StartingOn(bookings []*domain.Booking, date slotengine.Date, loc *time.Location) []*domain.Booking {
	out := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if slotengine.DateOf(b.StartTime.In(loc)).Equal(date) {
			out = append(out, b)
		}
	}
	return out
}

// Windows конвертирует окна доступности в окна движка
func Windows(availability []*domain.Availability) []slotengine.Window {
	windows := make([]slotengine.Window, 0, len(availability))
	for _, a := range availability {
		windows = append(windows, slotengine.Window{
			DayOfWeek:   time.Weekday(a.DayOfWeek),
			StartMinute: a.StartMinute,
			EndMinute:   a.EndMinute,
			IsActive:    a.IsActive,
		})
	}
	return windows
}

// Params извлекает параметры генерации слотов из типа события
func Params(et *domain.EventType) slotengine.Params {
	return slotengine.Params{
		DurationMinutes:      et.DurationMinutes,
		BeforeBufferMinutes:  et.BeforeBufferMinutes,
		AfterBufferMinutes:   et.AfterBufferMinutes,
		MinimumNoticeMinutes: et.MinimumNoticeMinutes,
	}
}

// Bookings конвертирует бронирования в локальные моменты часового пояса loc
// Конец округляется вверх, чтобы не укоротить занятый интервал
func Bookings(bookings []*domain.Booking, loc *time.Location) []slotengine.Booking {
	out := make([]slotengine.Booking, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, slotengine.Booking{
			Start:     slotengine.FromTime(b.StartTime.In(loc)),
			End:       slotengine.FromTimeCeil(b.EndTime.In(loc)),
			Confirmed: b.IsConfirmed(),
		})
	}
	return out
}
