package contract

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

var htmlTemplate = template.Must(template.New("contract").Parse(`<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="utf-8">
<title>{{.Title}} {{.Number}}</title>
<style>
body{font-family:Helvetica,Arial,sans-serif;font-size:12px;color:#222;max-width:800px;margin:0 auto}
h1{font-size:20px;margin-bottom:4px}
h2{font-size:14px;border-bottom:1px solid #ccc;padding-bottom:2px;margin-top:18px}
table{width:100%;border-collapse:collapse}
td{padding:2px 4px;vertical-align:top}
td.label{width:40%;color:#555}
.meta{color:#555}
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="meta">Contractnummer: {{.Number}}<br>Datum: {{.Date}}</p>
{{range .Sections}}<section>
<h2>{{.Heading}}</h2>
{{if .Fields}}<table>
{{range .Fields}}<tr><td class="label">{{.Label}}</td><td>{{.Value}}</td></tr>
{{end}}</table>
{{end}}{{range .Paragraphs}}<p>{{.}}</p>
{{end}}</section>
{{end}}</body>
</html>
`))

type htmlView struct {
	Title    string
	Number   string
	Date     string
	Sections []Section
}

func renderHTML(doc *Document) (string, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, htmlView{
		Title:    doc.Title,
		Number:   doc.Number,
		Date:     FormatDate(doc.GeneratedAt),
		Sections: doc.Sections,
	})
	if err != nil {
		return "", fmt.Errorf("render contract html: %w", err)
	}
	return buf.String(), nil
}

func renderText(doc *Document) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(doc.Title))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Contractnummer: %s\n", doc.Number)
	fmt.Fprintf(&b, "Datum: %s\n", FormatDate(doc.GeneratedAt))
	for _, s := range doc.Sections {
		b.WriteString("\n")
		b.WriteString(strings.ToUpper(s.Heading))
		b.WriteString("\n")
		for _, f := range s.Fields {
			fmt.Fprintf(&b, "%s: %s\n", f.Label, f.Value)
		}
		for _, p := range s.Paragraphs {
			b.WriteString(p)
			b.WriteString("\n")
		}
	}
	return b.String()
}
