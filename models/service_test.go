package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceUnmarshal_Flat(t *testing.T) {
	var s Service
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"name":"Manicure","descripcion":"Classic","price":35}`), &s))
	assert.Equal(t, 1, s.ID)
	assert.Equal(t, "Manicure", s.Name)
	assert.Equal(t, "Classic", s.Description)
	assert.Equal(t, 35.0, s.Price)
}

func TestServiceUnmarshal_AttributesWrapped(t *testing.T) {
	var s Service
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"attributes":{"name":"Pedicure","description":"Spa","price":"65"}}`), &s))
	assert.Equal(t, 2, s.ID)
	assert.Equal(t, "Pedicure", s.Name)
	assert.Equal(t, "Spa", s.Description)
	assert.Equal(t, 65.0, s.Price)
}

func TestFilterServices(t *testing.T) {
	catalog := []Service{
		{ID: 1, Name: "Manicure", Description: "Classic hands"},
		{ID: 2, Name: "Pedicure", Description: "Feet care"},
		{ID: 3, Name: "Nail Art", Description: "Custom manicure designs"},
	}

	t.Run("case-insensitive over name and description", func(t *testing.T) {
		got := FilterServices(catalog, "MANI", nil)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
	})

	t.Run("excludes selected", func(t *testing.T) {
		got := FilterServices(catalog, "", []int{1, 3})
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)
	})

	t.Run("blank term keeps everything", func(t *testing.T) {
		assert.Len(t, FilterServices(catalog, "", nil), 3)
	})

	t.Run("idempotent and non-mutating", func(t *testing.T) {
		first := FilterServices(catalog, "mani", []int{3})
		second := FilterServices(catalog, "mani", []int{3})
		assert.Equal(t, first, second)
		assert.Len(t, catalog, 3)
	})
}

func TestTotalPrice(t *testing.T) {
	services := []Service{{ID: 1, Price: 35}, {ID: 2, Price: 65}}
	assert.Equal(t, 100.0, TotalPrice(services))
	assert.Equal(t, 0.0, TotalPrice(nil))
}
