package layout

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		slots    []Slot
		expected map[string]int
	}{
		{
			name:     "content and status bar",
			total:    24,
			slots:    []Slot{{Name: "content"}, {Name: "status", Size: 1}},
			expected: map[string]int{"content": 23, "status": 1},
		},
		{
			name:     "weighted remainder goes to first dynamic slot",
			total:    10,
			slots:    []Slot{{Name: "a", Weight: 1}, {Name: "b", Weight: 2}},
			expected: map[string]int{"a": 4, "b": 6},
		},
		{
			name:     "static slots clamp to available rows",
			total:    1,
			slots:    []Slot{{Name: "top", Size: 1}, {Name: "content"}, {Name: "status", Size: 1}},
			expected: map[string]int{"top": 1, "content": 0, "status": 0},
		},
		{
			name:     "zero height",
			total:    0,
			slots:    []Slot{{Name: "content"}, {Name: "status", Size: 1}},
			expected: map[string]int{"content": 0, "status": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.total, tt.slots)
			for name, want := range tt.expected {
				if got[name] != want {
					t.Errorf("%s: expected %d, got %d", name, want, got[name])
				}
			}
		})
	}
}
