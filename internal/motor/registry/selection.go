package registry

// Selection is an optional single component reference with toggle semantics.
// The zero value has nothing selected.
type Selection struct {
	id  ComponentID
	set bool
}

// Toggle selects id, or clears the selection when id is already selected.
func (s *Selection) Toggle(id ComponentID) {
	if s.set && s.id == id {
		s.Clear()
		return
	}
	s.id = id
	s.set = true
}

// Set selects id unconditionally.
func (s *Selection) Set(id ComponentID) {
	s.id = id
	s.set = true
}

// Clear removes the selection.
func (s *Selection) Clear() {
	s.id = ""
	s.set = false
}

// Current returns the selected id and whether one is selected.
func (s Selection) Current() (ComponentID, bool) {
	return s.id, s.set
}

// Is reports whether id is the current selection.
func (s Selection) Is(id ComponentID) bool {
	return s.set && s.id == id
}
