// Package document renders estimates, invoices and work orders as HTML.
package document

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"foampro/internal/usecase/interfaces"
)

const ContentTypeHTML = "text/html; charset=utf-8"

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9_-]+`)

var page = template.Must(template.New("document").Funcs(template.FuncMap{
	"money": func(v interface{ StringFixed(int32) string }) string { return "$" + v.StringFixed(2) },
}).Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Title}} {{.Number}}</title></head>
<body>
<header>
  <h1>{{.Company.CompanyName}}</h1>
  <p>{{.Company.AddressLine1}}{{if .Company.AddressLine2}}, {{.Company.AddressLine2}}{{end}}</p>
  <p>{{.Company.City}} {{.Company.State}} {{.Company.Zip}}</p>
  <p>{{.Company.Phone}} {{.Company.Email}}</p>
</header>
<section>
  <h2>{{.Title}}</h2>
  <p>No. {{.Number}} &middot; {{.Date}}{{if .Terms}} &middot; {{.Terms}}{{end}}</p>
  <p><strong>{{.Customer.Name}}</strong><br>{{.Customer.Address}}<br>{{.Customer.City}} {{.Customer.State}} {{.Customer.Zip}}</p>
  {{with .Record.ScheduledDate}}<p>Scheduled: {{.}}</p>{{end}}
</section>
<table>
  <thead><tr><th>Description</th><th>Qty</th>{{if .ShowCost}}<th>Amount</th>{{end}}</tr></thead>
  <tbody>
  {{- range .Lines}}
    <tr><td>{{.Description}}</td><td>{{.Quantity}}</td>{{if $.ShowCost}}<td>{{money .Amount}}</td>{{end}}</tr>
  {{- end}}
  </tbody>
  {{if .ShowCost}}<tfoot><tr><td colspan="2">Total</td><td>{{money .Total}}</td></tr></tfoot>{{end}}
</table>
{{with .Record.Notes}}<p>{{.}}</p>{{end}}
</body></html>
`))

type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Render(_ context.Context, data interfaces.DocumentData) (interfaces.RenderedDocument, error) {
	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return interfaces.RenderedDocument{}, fmt.Errorf("render %s: %w", data.Kind, err)
	}
	return interfaces.RenderedDocument{
		FileName:    FileName(data.Title, data.Number),
		ContentType: ContentTypeHTML,
		Body:        buf.Bytes(),
	}, nil
}

// FileName builds "<Title>-<Number>.html" with unsafe characters replaced.
func FileName(title, number string) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(title+"-"+number, "_"), "_-")
	if name == "" {
		name = "document"
	}
	return name + ".html"
}
