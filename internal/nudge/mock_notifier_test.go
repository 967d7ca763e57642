package nudge

type mockNotifier struct {
	called    bool
	habits    []string
	hoursLeft int
	err       error
}

func (m *mockNotifier) SendNudge(habits []string, hoursLeft int) error {
	m.called = true
	m.habits = habits
	m.hoursLeft = hoursLeft
	return m.err
}
