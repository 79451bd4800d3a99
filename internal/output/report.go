package output

import (
	"html/template"
	"os"

	"security-maturity-assessor/internal/model"
)

var reportTpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"pct": func(v float64) string { return pct(v) },
}).Parse(`
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Security Maturity Assessment</title>
<style>
body { font-family: "Segoe UI", Arial, sans-serif; margin: 40px; color: #222; }
h1 { color: #333; }
.score { font-size: 28px; font-weight: bold; }
.badge { display: inline-block; padding: 4px 14px; border-radius: 14px; color: #fff; font-weight: 700; }
.meta { color: #666; font-size: 0.85em; margin-bottom: 20px; }
.domain { margin: 10px 0; }
.bar { background: #e0e0e0; border-radius: 3px; height: 6px; width: 240px; display: inline-block; vertical-align: middle; }
.fill { height: 6px; border-radius: 3px; display: block; }
table { border-collapse: collapse; width: 100%; margin-top: 14px; }
th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
th { background-color: #f2f2f2; }
.c-CRITICAL { color: #c0392b; font-weight: 600; }
.c-HIGH { color: #d35400; font-weight: 600; }
.c-MEDIUM { color: #7d6608; }
.c-LOW { color: #555; }
.footer { margin-top: 28px; color: #888; font-size: 0.8em; border-top: 1px solid #e0e0e0; padding-top: 10px; }
</style>
</head>
<body>

<h1>Security Maturity Assessment</h1>
<div class="meta">
{{if .Metadata.Organization}}Organization: {{.Metadata.Organization}} · {{end}}{{if .Metadata.Team}}Team: {{.Metadata.Team}} · {{end}}Generated {{.Metadata.GeneratedAt}} · Run {{.Run.RunID}}
</div>

<div class="score">Overall Score: {{pct .Overall.Score}}</div>
<h2>Maturity: <span class="badge" style="background:{{.Overall.Maturity.Color}}">{{.Overall.Maturity.Name}}</span></h2>
<p>Coverage {{pct .Overall.Coverage}} ({{.Overall.AnsweredCount}}/{{.Overall.TotalCount}} answered) · Evidence readiness {{pct .Overall.EvidenceReadiness}} · {{.Overall.CriticalGapCount}} critical gaps</p>

<h3>Domain Scores</h3>
{{range .Domains}}
<div class="domain">
{{.Name}}: {{pct .Node.Score}} ({{.Node.Maturity.Name}})
<span class="bar"><span class="fill" style="width:{{pct .Node.Score}};background:{{.Node.Maturity.Color}}"></span></span>
</div>
{{end}}

<h3>Subcategories</h3>
<table>
<tr><th>Domain</th><th>Subcategory</th><th>Criticality</th><th>Score</th><th>Coverage</th><th>Maturity</th></tr>
{{range $d := .Domains}}{{range $d.Subcategories}}
<tr>
<td>{{$d.Name}}</td>
<td>{{.Name}}</td>
<td class="c-{{.Criticality}}">{{.Criticality}}</td>
<td>{{pct .Node.Score}}</td>
<td>{{pct .Node.Coverage}}</td>
<td>{{.Node.Maturity.Name}}</td>
</tr>
{{end}}{{end}}
</table>

{{if .Ownership}}
<h3>By Ownership</h3>
<table>
<tr><th>Team</th><th>Score</th><th>Coverage</th><th>Critical Gaps</th></tr>
{{range .Ownership}}
<tr><td>{{.Name}}</td><td>{{pct .Node.Score}}</td><td>{{pct .Node.Coverage}}</td><td>{{.Node.CriticalGapCount}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Frameworks}}
<h3>Framework Alignment</h3>
<table>
<tr><th>Framework</th><th>Score</th><th>Coverage</th><th>Maturity</th></tr>
{{range .Frameworks}}
<tr><td>{{.Name}}</td><td>{{pct .Node.Score}}</td><td>{{pct .Node.Coverage}}</td><td>{{.Node.Maturity.Name}}</td></tr>
{{end}}
</table>
{{end}}

<h3>Critical Gaps</h3>
{{if .Gaps}}
<table>
<tr><th>Criticality</th><th>Question</th><th>Subcategory</th><th>Ownership</th><th>Score</th></tr>
{{range .Gaps}}
<tr>
<td class="c-{{.Criticality}}">{{.Criticality}}</td>
<td>{{.QuestionText}}</td>
<td>{{.SubcategoryName}}</td>
<td>{{.Ownership}}</td>
<td>{{printf "%.2f" .Score}}</td>
</tr>
{{end}}
</table>
{{else}}
<p>No critical gaps detected.</p>
{{end}}

{{if .RemediationSteps}}
<h3>Remediation Plan</h3>
<table>
<tr><th>#</th><th>Step</th><th>Detail</th><th>Ownership</th></tr>
{{range .RemediationSteps}}
<tr><td>{{.Priority}}</td><td>{{.Title}}</td><td>{{.Detail}}</td><td>{{.Ownership}}</td></tr>
{{end}}
</table>
{{end}}

{{if .Warnings}}
<h3>Data Warnings</h3>
<ul>
{{range .Warnings}}<li>{{.}}</li>{{end}}
</ul>
{{end}}

<div class="footer">Generated by security-maturity-assessor {{.Metadata.ToolVersion}}</div>

</body>
</html>
`))

func WriteHTML(path string, a *model.Assessment) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return reportTpl.Execute(f, a)
}
