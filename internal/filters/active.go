package filters

// ActiveCount reports how many filter keys are set, excluding pagination.
// UI chips and badges key off this.
func (f Filter) ActiveCount() int {
	n := 0
	if f.Query != "" {
		n++
	}
	if f.Category != "" {
		n++
	}
	if f.Agency != "" {
		n++
	}
	if f.Rating != nil {
		n++
	}
	if f.Dietary != "" {
		n++
	}
	if f.PriceRange != nil {
		n++
	}
	if f.OpenNow != nil {
		n++
	}
	if f.NearMe != nil {
		n++
	}
	if f.Accessible != nil {
		n++
	}
	if f.Lat != nil {
		n++
	}
	if f.Lng != nil {
		n++
	}
	if f.DistanceMi != nil {
		n++
	}
	if len(f.Amenities) > 0 {
		n++
	}
	return n
}

// Active reports whether any non-pagination filter is set.
func (f Filter) Active() bool { return f.ActiveCount() > 0 }
