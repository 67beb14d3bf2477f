package pdf

import (
	"fmt"
	"html/template"
	"strings"

	"registration-sheets-be/internal/entity"
)

// SheetTemplate renders an assembled applicant document as the HTML handed
// to the render collaborator.
type SheetTemplate struct {
	tmpl *template.Template
}

func NewSheetTemplate() (*SheetTemplate, error) {
	tmpl, err := template.New("sheet").Parse(sheetHTML)
	if err != nil {
		return nil, fmt.Errorf("parse sheet template: %w", err)
	}
	return &SheetTemplate{tmpl: tmpl}, nil
}

func (t *SheetTemplate) Render(doc *entity.ApplicantDocument) (string, error) {
	var b strings.Builder
	if err := t.tmpl.Execute(&b, doc); err != nil {
		return "", fmt.Errorf("render sheet %s: %w", doc.RegistrationNumber, err)
	}
	return b.String(), nil
}

const sheetHTML = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 18mm 14mm; }
  body { font-family: Arial, Helvetica, sans-serif; color: #222; font-size: 11pt; }
  h1 { font-size: 15pt; border-bottom: 2px solid #444; padding-bottom: 4px; }
  h2 { font-size: 12pt; background: #eee; padding: 4px 6px; margin-top: 18px; }
  table { width: 100%; border-collapse: collapse; margin-top: 6px; }
  td, th { border: 1px solid #ccc; padding: 4px 6px; text-align: left; vertical-align: top; }
  th { background: #f6f6f6; width: 35%; }
  .status { font-weight: bold; }
  .parecer { white-space: pre-wrap; }
  .total { font-weight: bold; }
</style>
</head>
<body>
  <h1>Ficha de Inscrição — {{.RegistrationNumber}}</h1>
  <p>Agente: <strong>{{.Agent.Name}}</strong></p>

  {{range .Phases}}
  <h2>{{.Phase.Name}}{{if .StatusText}} — <span class="status">{{.StatusText}}</span>{{end}}</h2>

  {{if .Rows}}
  <table>
    {{range .Rows}}<tr><th>{{.Label}}</th><td>{{.Value}}</td></tr>
    {{end}}
  </table>
  {{end}}

  {{with .Evaluation}}
    {{if .HasTechnical}}
      {{range .Sections}}
      <table>
        {{if .Title}}<tr><th colspan="2">{{.Title}}</th></tr>{{end}}
        {{range .Criteria}}<tr><td>{{.Label}}</td><td>{{.Score}}</td></tr>
        {{end}}
      </table>
      {{end}}
      <p class="total">Pontuação final: {{.Total}}</p>
    {{else if .HasSimplified}}
      <p class="total">Resultado: {{.Total}}</p>
    {{end}}
    {{if .Parecer}}<p class="parecer"><strong>Parecer:</strong> {{.Parecer}}</p>{{end}}
  {{end}}

  {{if .Attachments}}
  <p><strong>Anexos:</strong></p>
  <ul>
    {{range .Attachments}}<li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}
  {{end}}
</body>
</html>`
