package constant

// Registration status codes as stored by the application form.
const (
	StatusDraft       = 0
	StatusSent        = 1
	StatusInvalid     = 2
	StatusNotSelected = 3
	StatusWaitlisted  = 8
	StatusSelected    = 10
)

var statusLabels = map[int]string{
	StatusDraft:       "Rascunho",
	StatusSent:        "Pendente",
	StatusInvalid:     "Inválida",
	StatusNotSelected: "Não selecionada",
	StatusWaitlisted:  "Suplente",
	StatusSelected:    "Selecionada",
}

// StatusLabel returns the display label for a registration status code.
// Unmapped codes render as an empty string, never an error.
func StatusLabel(status int) string {
	return statusLabels[status]
}
