package habit

// Habit is one tracked habit as it appears in the store file. History holds
// completion days as "YYYY-MM-DD" strings, sorted ascending. Streak is a
// cache of the current streak, refreshed from History on every mutating
// command; it is never the source of truth.
type Habit struct {
	Name    string   `json:"name"`
	Streak  int      `json:"streak"`
	History []string `json:"history"`
}

// LastEntry returns the most recent history entry, or "" for an empty history.
func (h *Habit) LastEntry() string {
	if len(h.History) == 0 {
		return ""
	}
	return h.History[len(h.History)-1]
}

type HabitSummary struct {
	Name          string `json:"name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	TotalDaysDone int    `json:"total_days_done"`
	LastEntry     string `json:"last_entry"`
}

// List is the full habit store, loaded and saved wholesale.
type List []Habit

func (l List) Find(name string) *Habit {
	for i := range l {
		if l[i].Name == name {
			return &l[i]
		}
	}
	return nil
}

func (l List) Names() []string {
	names := make([]string, 0, len(l))
	for i := range l {
		names = append(names, l[i].Name)
	}
	return names
}

// Remove drops the habit with the given name. The second return reports
// whether anything was removed.
func (l List) Remove(name string) (List, bool) {
	for i := range l {
		if l[i].Name == name {
			return append(l[:i:i], l[i+1:]...), true
		}
	}
	return l, false
}
