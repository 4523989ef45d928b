package service

import (
	"context"
	"time"

	"github.com/bhushansable/Gurukrupa-Mess/internal/api"
	"github.com/bhushansable/Gurukrupa-Mess/internal/enum"
)

// MenuAPI defines the API calls needed by the home and menu screens.
// Satisfied by *api.Client; narrow interface for testability.
type MenuAPI interface {
	Menu(ctx context.Context, day string) ([]api.MenuItem, error)
	WeeklyMenu(ctx context.Context) (api.WeeklyMenu, error)
}

// TodayMenu is the home screen's view of today's food.
type TodayMenu struct {
	Day      string         `json:"day"`
	Daily    []api.MenuItem `json:"daily"`
	Specials []api.MenuItem `json:"specials"`
}

// MenuService serves the home and weekly menu screens.
type MenuService struct {
	api MenuAPI
	now func() time.Time
}

func NewMenuService(client MenuAPI) *MenuService {
	return &MenuService{api: client, now: time.Now}
}

// Today fetches the menu for the current weekday and splits the items
// served every day from today's specials.
func (s *MenuService) Today(ctx context.Context) (*TodayMenu, error) {
	day := enum.DayOf(s.now())
	items, err := s.api.Menu(ctx, day)
	if err != nil {
		return nil, err
	}
	out := &TodayMenu{Day: day}
	for _, it := range items {
		if it.DayOfWeek == enum.DayDaily {
			out.Daily = append(out.Daily, it)
		} else {
			out.Specials = append(out.Specials, it)
		}
	}
	return out, nil
}

// DayMenu is one weekday column of the weekly menu.
type DayMenu struct {
	Day   string         `json:"day"`
	Items []api.MenuItem `json:"items"`
}

// Weekly returns the weekly menu ordered monday..sunday.
func (s *MenuService) Weekly(ctx context.Context) ([]DayMenu, error) {
	weekly, err := s.api.WeeklyMenu(ctx)
	if err != nil {
		return nil, err
	}
	days := enum.Weekdays()
	out := make([]DayMenu, 0, len(days))
	for _, d := range days {
		out = append(out, DayMenu{Day: d, Items: weekly[d]})
	}
	return out, nil
}
