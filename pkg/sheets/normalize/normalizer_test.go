package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplay(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty",
			raw:  "",
			want: "",
		},
		{
			name: "whitespace only",
			raw:  "   ",
			want: "",
		},
		{
			name: "plain text passes through",
			raw:  "Projeto de circo",
			want: "Projeto de circo",
		},
		{
			name: "iso date",
			raw:  "2024-03-15",
			want: "15/03/2024",
		},
		{
			name: "iso datetime",
			raw:  "2024-03-15 09:30:00",
			want: "15/03/2024 09:30",
		},
		{
			name: "rfc3339",
			raw:  "2024-03-15T09:30:00Z",
			want: "15/03/2024 09:30",
		},
		{
			name: "json array",
			raw:  `["Teatro","Dança","Circo"]`,
			want: "Teatro, Dança, Circo",
		},
		{
			name: "json array of numbers",
			raw:  `[1,2.5]`,
			want: "1, 2.5",
		},
		{
			name: "json object sorted by key",
			raw:  `{"cidade":"Recife","bairro":"Boa Vista"}`,
			want: "bairro: Boa Vista\ncidade: Recife",
		},
		{
			name: "object with booleans",
			raw:  `{"aceito":true,"menor":false}`,
			want: "aceito: Sim\nmenor: Não",
		},
		{
			name: "malformed json passes through",
			raw:  `[not json`,
			want: `[not json`,
		},
		{
			name: "number-like text passes through",
			raw:  "12345",
			want: "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Display(tt.raw))
		})
	}
}
