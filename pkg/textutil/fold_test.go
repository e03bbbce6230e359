package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/crm-api/pkg/textutil"
)

func TestFold_MinusculasYTildes(t *testing.T) {
	casos := []struct {
		in   string
		want string
	}{
		{"Camión", "camion"},
		{"CAFÉ", "cafe"},
		{"azucar", "azucar"},
		{"Niño", "nino"},
		{"ÁÉÍÓÚ äëïöü", "aeiou aeiou"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.want, textutil.Fold(c.in), "Fold(%q)", c.in)
	}
}

func TestFold_TerminoYNombreCoinciden(t *testing.T) {
	// La búsqueda compara término y nombre ya plegados: "camion" debe
	// encontrar "Camión" y viceversa.
	assert.Equal(t, textutil.Fold("camion"), textutil.Fold("Camión"))
	assert.Equal(t, textutil.Fold("CAFÉ con leche"), textutil.Fold("café con Leche"))
}
