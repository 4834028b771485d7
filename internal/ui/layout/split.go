package layout

// Slot is one band of a vertical split
type Slot struct {
	Name   string
	Size   int // static height
	Weight int // share of the remaining height when Size is 0
}

// Split divides total rows between slots. Static slots get their Size
// (clamped to what is available), weighted slots share the rest.
func Split(total int, slots []Slot) map[string]int {
	if total < 0 {
		total = 0
	}

	totalWeight := 0
	reserved := 0
	for _, s := range slots {
		if s.Size > 0 {
			reserved += s.Size
		} else {
			totalWeight += weight(s)
		}
	}

	dynamic := total - reserved
	if dynamic < 0 {
		dynamic = 0
	}

	sizes := make([]int, len(slots))
	remaining := total
	for i, s := range slots {
		if s.Size > 0 {
			sizes[i] = min(remaining, s.Size)
			remaining -= sizes[i]
		}
	}
	allocated := 0
	for i, s := range slots {
		if s.Size == 0 && totalWeight > 0 {
			sizes[i] = (dynamic * weight(s)) / totalWeight
			allocated += sizes[i]
		}
	}

	// distribute remainder
	rest := dynamic - allocated
	for i := 0; rest > 0 && i < len(slots); i++ {
		if slots[i].Size == 0 {
			sizes[i]++
			rest--
		}
	}

	result := make(map[string]int, len(slots))
	for i, s := range slots {
		result[s.Name] = sizes[i]
	}
	return result
}

func weight(s Slot) int {
	if s.Weight == 0 {
		return 1
	}
	return s.Weight
}
