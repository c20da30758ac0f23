package pipeline

// Selection is the ordered set of lead identifiers chosen for a bulk action
// or a scoped export. It is identifier-based, not view-based: narrowing the
// filter after selecting leaves now-invisible identifiers selected until
// they are toggled off or the set is cleared.
type Selection struct {
	order   []int64
	members map[int64]struct{}
}

func NewSelection() *Selection {
	return &Selection{members: make(map[int64]struct{})}
}

// Toggle flips membership for one identifier. Valid for identifiers that
// are no longer visible, and for ones that never were.
func (s *Selection) Toggle(id int64) {
	if _, ok := s.members[id]; ok {
		delete(s.members, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}

	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

// SelectAll replaces the selection with exactly the given identifiers,
// which callers derive from the currently visible subset, not the cache.
func (s *Selection) SelectAll(ids []int64) {
	s.members = make(map[int64]struct{}, len(ids))
	s.order = s.order[:0]
	for _, id := range ids {
		if _, ok := s.members[id]; ok {
			continue
		}
		s.members[id] = struct{}{}
		s.order = append(s.order, id)
	}
}

func (s *Selection) Clear() {
	s.members = make(map[int64]struct{})
	s.order = nil
}

func (s *Selection) IsSelected(id int64) bool {
	_, ok := s.members[id]
	return ok
}

// IDs returns the selected identifiers in selection order.
func (s *Selection) IDs() []int64 {
	out := make([]int64, len(s.order))
	copy(out, s.order)
	return out
}

func (s *Selection) Len() int {
	return len(s.order)
}

func (s *Selection) Empty() bool {
	return len(s.order) == 0
}
