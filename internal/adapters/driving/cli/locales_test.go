package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalcentro/centrorag/internal/core/domain"
)

func TestLocalesCmd_Use(t *testing.T) {
	assert.Equal(t, "locales", localesCmd.Use)
}

func TestLocalesCmd_HasFilterFlags(t *testing.T) {
	assert.NotNil(t, localesCmd.Flags().Lookup("numero"))
	assert.NotNil(t, localesCmd.Flags().Lookup("estado"))
}

func TestLocalesCmd_ListsLocales(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	localeStore = &fakeLocaleStore{locales: []domain.Locale{
		{Numero: 3, NombreLocal: "Café Central", Piso: "1", MetrosCuadrados: 45, MontoArriendoUF: 12.5, Estado: "Arrendado", Arrendatario: "María Pérez"},
		{Numero: 5, NombreLocal: "Farmacia Sur", Piso: "1", MetrosCuadrados: 60, MontoArriendoUF: 18, Estado: "Disponible"},
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"locales"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "[3] Café Central")
	assert.Contains(t, out, "12.5 UF")
	assert.Contains(t, out, "Arrendatario: María Pérez")
	assert.Contains(t, out, "[5] Farmacia Sur")
	assert.Contains(t, out, "2 locales.")
}

func TestLocalesCmd_PassesFilters(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	fake := &fakeLocaleStore{}
	localeStore = fake

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"locales", "--numero", "5", "--estado", "Disponible"})
	defer func() {
		rootCmd.SetArgs(nil)
		localesNumero = 0
		localesEstado = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	require.NotNil(t, fake.filter.Numero)
	assert.Equal(t, 5, *fake.filter.Numero)
	require.NotNil(t, fake.filter.Estado)
	assert.Equal(t, "Disponible", *fake.filter.Estado)
	assert.Contains(t, buf.String(), "No locales found.")
}
