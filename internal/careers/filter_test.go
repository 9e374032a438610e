package careers

import "testing"

func sampleJobs() []Job {
	return []Job{
		{Title: "Senior Software Engineer", Department: "Engineering", Location: "Remote", JobType: "Full-time"},
		{Title: "Product Manager", Department: "Product", Location: "San Francisco, CA", JobType: "Full-time"},
		{Title: "UX Designer", Department: "Design", Location: "Remote", JobType: "Contract"},
		{Title: "Engineering Manager", Department: "Engineering", Location: "Berlin", JobType: "Full-time"},
	}
}

func TestFilterQueryMatchesTitleOrDepartment(t *testing.T) {
	got := FilterJobs(sampleJobs(), Filter{Query: "engineer"})
	if len(got) != 2 {
		t.Fatalf("got %d jobs, want 2", len(got))
	}
	if got[0].Title != "Senior Software Engineer" || got[1].Title != "Engineering Manager" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestFilterQueryIsCaseInsensitive(t *testing.T) {
	got := FilterJobs(sampleJobs(), Filter{Query: "PRODUCT"})
	if len(got) != 1 || got[0].Title != "Product Manager" {
		t.Fatalf("unexpected matches: %+v", got)
	}
}

func TestFilterCombinesWithAnd(t *testing.T) {
	// "engineer" matches two jobs but neither Remote one is in Berlin.
	got := FilterJobs(sampleJobs(), Filter{Query: "engineer", Location: "Berlin"})
	if len(got) != 1 || got[0].Title != "Engineering Manager" {
		t.Fatalf("unexpected matches: %+v", got)
	}

	got = FilterJobs(sampleJobs(), Filter{Query: "designer", Location: "Remote", JobType: "Full-time"})
	if len(got) != 0 {
		t.Fatalf("got %d jobs, want 0", len(got))
	}
}

func TestFilterZeroValueMatchesAll(t *testing.T) {
	got := FilterJobs(sampleJobs(), Filter{})
	if len(got) != 4 {
		t.Fatalf("got %d jobs, want 4", len(got))
	}
}

func TestLocationsDistinctFirstSeen(t *testing.T) {
	got := Locations(sampleJobs())
	want := []string{"Remote", "San Francisco, CA", "Berlin"}
	if len(got) != len(want) {
		t.Fatalf("Locations() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Locations() = %v, want %v", got, want)
		}
	}
}

func TestJobTypesSkipEmpty(t *testing.T) {
	jobs := append(sampleJobs(), Job{Title: "Intern", JobType: ""})
	got := JobTypes(jobs)
	want := []string{"Full-time", "Contract"}
	if len(got) != len(want) {
		t.Fatalf("JobTypes() = %v, want %v", got, want)
	}
}

func TestSalary(t *testing.T) {
	cases := []struct {
		job  Job
		want string
	}{
		{Job{SalaryMin: 120000, SalaryMax: 180000, SalaryCurrency: "USD"}, "USD 120000 – 180000"},
		{Job{SalaryMin: 90000, SalaryCurrency: "EUR"}, "EUR 90000+"},
		{Job{}, ""},
	}
	for _, tc := range cases {
		if got := Salary(tc.job); got != tc.want {
			t.Fatalf("Salary(%+v) = %q, want %q", tc.job, got, tc.want)
		}
	}
}
