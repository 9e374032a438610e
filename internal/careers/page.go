package careers

import (
	"fmt"
	"html/template"
	"io"
)

// PageData is everything the public page template needs. Jobs is the
// filtered list; AllJobs feeds the dropdown option lists so selecting a
// filter does not shrink the available choices.
type PageData struct {
	Company   Company
	Sections  []Section
	Jobs      []Job
	AllJobs   []Job
	Filter    Filter
	Locations []string
	JobTypes  []string
}

// RenderPage writes the public careers page HTML.
func RenderPage(w io.Writer, data PageData) error {
	return pageTmpl.Execute(w, data)
}

// Salary renders a job's salary range, or "" when the posting has none.
func Salary(j Job) string {
	switch {
	case j.SalaryMin > 0 && j.SalaryMax > 0:
		return fmt.Sprintf("%s %d – %d", j.SalaryCurrency, j.SalaryMin, j.SalaryMax)
	case j.SalaryMin > 0:
		return fmt.Sprintf("%s %d+", j.SalaryCurrency, j.SalaryMin)
	default:
		return ""
	}
}

var pageTmpl = template.Must(template.New("careers").Funcs(template.FuncMap{
	"salary": Salary,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Company.Name}} Careers</title>
<meta name="description" content="Join {{.Company.Name}}. Browse open positions and apply today.">
<style>
  body { margin: 0; font-family: system-ui, sans-serif; color: #1a1a1a; }
  .hero { padding: 6rem 3rem; color: #fff; }
  .hero.banner { background-size: cover; background-position: center; position: relative; }
  .hero.banner .shade { position: absolute; inset: 0; background: rgba(0,0,0,.5); }
  .hero .inner { position: relative; max-width: 60rem; }
  .hero img.logo { height: 4rem; margin-bottom: 1.5rem; }
  .hero h1 { font-size: 2.5rem; margin: 0 0 1rem; }
  section { max-width: 60rem; margin: 0 auto; padding: 3rem 1.5rem; border-bottom: 1px solid #e5e5e5; }
  section:last-child { border-bottom: 0; }
  .section-content { white-space: pre-wrap; line-height: 1.6; }
  .video { aspect-ratio: 16 / 9; width: 100%; border: 0; border-radius: .5rem; }
  form.filters { display: flex; gap: 1rem; flex-wrap: wrap; margin-bottom: 2rem; }
  form.filters input, form.filters select { padding: .5rem; border: 1px solid #d4d4d4; border-radius: .25rem; }
  .job { border: 1px solid #e5e5e5; border-radius: .5rem; padding: 1.25rem; margin-bottom: 1rem; }
  .job h3 { margin: 0 0 .5rem; }
  .job .meta { color: #525252; font-size: .9rem; }
  .empty { color: #525252; text-align: center; padding: 3rem 0; }
</style>
</head>
<body>

{{if .Company.BannerURL}}
<header class="hero banner" style="background-image: url('{{.Company.BannerURL}}')">
  <div class="shade"></div>
  <div class="inner">
    {{if .Company.LogoURL}}<img class="logo" src="{{.Company.LogoURL}}" alt="{{.Company.Name}}">{{end}}
    <h1>Careers at {{.Company.Name}}</h1>
    {{if .Company.Description}}<p>{{.Company.Description}}</p>{{end}}
  </div>
</header>
{{else}}
<header class="hero" style="background-color: {{.Company.PrimaryColor}}">
  <div class="inner">
    {{if .Company.LogoURL}}<img class="logo" src="{{.Company.LogoURL}}" alt="{{.Company.Name}}">{{end}}
    <h1>Careers at {{.Company.Name}}</h1>
    {{if .Company.Description}}<p>{{.Company.Description}}</p>{{end}}
  </div>
</header>
{{end}}

{{if .Company.CultureVideoURL}}
<section>
  <h2 style="color: {{.Company.AccentColor}}">Life at {{.Company.Name}}</h2>
  <iframe class="video" src="{{.Company.CultureVideoURL}}" allowfullscreen title="Life at {{.Company.Name}}"></iframe>
</section>
{{end}}

{{range .Sections}}
<section>
  <h2>{{.Title}}</h2>
  <div class="section-content">{{.Content}}</div>
</section>
{{end}}

<section>
  <h2>Open Positions</h2>

  <form class="filters" method="get">
    <input type="text" name="q" placeholder="Search by title or department" value="{{.Filter.Query}}">
    <select name="location">
      <option value="">All Locations</option>
      {{range .Locations}}<option value="{{.}}" {{if eq . $.Filter.Location}}selected{{end}}>{{.}}</option>{{end}}
    </select>
    <select name="type">
      <option value="">All Types</option>
      {{range .JobTypes}}<option value="{{.}}" {{if eq . $.Filter.JobType}}selected{{end}}>{{.}}</option>{{end}}
    </select>
    <button type="submit" style="background-color: {{.Company.AccentColor}}; color: #fff; border: 0; border-radius: .25rem; padding: .5rem 1rem;">Filter</button>
  </form>

  {{if not .Jobs}}
  <p class="empty">No positions match your search</p>
  {{else}}
  {{range .Jobs}}
  <div class="job">
    <h3>{{.Title}}</h3>
    <div class="meta">
      {{if .Department}}{{.Department}}{{end}}
      {{if .Location}} · {{.Location}}{{end}}
      {{if .JobType}} · {{.JobType}}{{end}}
      {{with salary .}} · {{.}}{{end}}
    </div>
    {{if .Description}}<p>{{.Description}}</p>{{end}}
  </div>
  {{end}}
  {{end}}
</section>

</body>
</html>
`))
