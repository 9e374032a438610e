package careers

import "strings"

// Filter is the public-page job search state. The zero value matches
// everything.
type Filter struct {
	Query    string // case-insensitive substring on title or department
	Location string // exact match when set
	JobType  string // exact match when set
}

// Matches is the filter predicate: text match on title or department, AND
// location when a location is selected, AND job type when a type is
// selected.
func (f Filter) Matches(j Job) bool {
	if f.Query != "" {
		needle := strings.ToLower(f.Query)
		inTitle := strings.Contains(strings.ToLower(j.Title), needle)
		inDept := strings.Contains(strings.ToLower(j.Department), needle)
		if !inTitle && !inDept {
			return false
		}
	}
	if f.Location != "" && j.Location != f.Location {
		return false
	}
	if f.JobType != "" && j.JobType != f.JobType {
		return false
	}
	return true
}

// FilterJobs returns the jobs matching f, preserving order.
func FilterJobs(jobs []Job, f Filter) []Job {
	out := make([]Job, 0, len(jobs))
	for _, j := range jobs {
		if f.Matches(j) {
			out = append(out, j)
		}
	}
	return out
}

// Locations lists the distinct non-empty job locations in first-seen order,
// for the filter dropdown.
func Locations(jobs []Job) []string {
	return distinct(jobs, func(j Job) string { return j.Location })
}

// JobTypes lists the distinct non-empty job types in first-seen order.
func JobTypes(jobs []Job) []string {
	return distinct(jobs, func(j Job) string { return j.JobType })
}

func distinct(jobs []Job, key func(Job) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, j := range jobs {
		k := key(j)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
