package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/infrastructure/storage"
	"github.com/tu-usuario/estoque-pro/pkg/logger"
)

func openTestStore(t *testing.T) *storage.BadgerStore {
	t.Helper()
	s, err := storage.Open(storage.Config{InMemory: true}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	type settings struct {
		Threshold int `json:"threshold"`
	}
	s.Set("inventory_settings", settings{Threshold: 15})

	var got settings
	require.True(t, s.Get("inventory_settings", &got))
	assert.Equal(t, 15, got.Threshold)
}

func TestBadgerStore_ClaveAusente(t *testing.T) {
	s := openTestStore(t)

	var got map[string]int
	assert.False(t, s.Get("no-existe", &got), "clave ausente debe devolver false para sembrar defaults")
}

func TestBadgerStore_ValorCorrupto(t *testing.T) {
	s := openTestStore(t)

	// Un string JSON válido que no deserializa al tipo destino.
	s.Set("clave", "no soy un objeto")

	var got struct{ X int }
	assert.False(t, s.Get("clave", &got), "el valor que no deserializa se trata como ausente")
}

func TestBadgerStore_Sobrescritura(t *testing.T) {
	s := openTestStore(t)

	s.Set("clave", []string{"a"})
	s.Set("clave", []string{"a", "b"})

	var got []string
	require.True(t, s.Get("clave", &got))
	assert.Equal(t, []string{"a", "b"}, got)
}
