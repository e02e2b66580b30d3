package ruleset

// Sanitize clamps a structurally questionable snapshot to nearest-valid
// values. The engine must never fail on a bad snapshot: an importer bug
// that raised an error here would brick the whole dashboard, so malformed
// fields degrade instead (an empty interval list simply schedules no
// reviews).
func Sanitize(c Config) Config {
	out := c

	if len(out.PhaseBands) == 0 {
		out.PhaseBands = Default().PhaseBands
	}

	intervals := make([]int, 0, len(out.Forgetting.IntervalsDays))
	for _, d := range out.Forgetting.IntervalsDays {
		if d >= 1 {
			intervals = append(intervals, d)
		}
	}
	out.Forgetting.IntervalsDays = intervals

	if out.Forgetting.GraduationCount < 2 {
		out.Forgetting.GraduationCount = 2
	}
	if out.Forgetting.MaxDailyReviewMin < 0 {
		out.Forgetting.MaxDailyReviewMin = 0
	}

	if out.General.BufferRatio < 0 {
		out.General.BufferRatio = 0
	}
	if out.General.BufferRatio > 1 {
		out.General.BufferRatio = 1
	}

	return out
}
