package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalog = `{"data":[
	{"id":1,"name":"Manicura Gel","price":25},
	{"id":2,"name":"Pedicura","price":30},
	{"id":3,"attributes":{"name":"Gel Premium","descripcion":"Con diseño","price":"40"}}
]}`

func TestServices_SearchAndExclude(t *testing.T) {
	be := &backend{services: catalog}
	app, _ := newApp(t, be)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/services?search=gel&exclude=3", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, []int{1}, rowIDs(t, body))
	assert.Equal(t, time.Now().Format("2006-01-02"), body["min_date"])
}

func TestServices_BackendFailureDegrades(t *testing.T) {
	be := &backend{}
	app, _ := newApp(t, be)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/services", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	assert.Equal(t, "Error al cargar servicios", body["error"])
	assert.Empty(t, body["data"])
}

func TestCreateBooking_RequiresSession(t *testing.T) {
	be := &backend{}
	app, _ := newApp(t, be)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/bookings", map[string]any{
		"services": []int{1}, "date": "2026-09-10", "time": "10:00",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCreateBooking_PendingAccountBlocked(t *testing.T) {
	be := &backend{me: `{"id":8,"username":"nueva","account_status":"pending"}`}
	app, store := newApp(t, be)

	req := jsonRequest(http.MethodPost, "/api/bookings", map[string]any{
		"services": []int{1}, "date": "2026-09-10", "time": "10:00",
	})
	req.AddCookie(seedSession(store))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Contains(t, decodeBody(t, res)["error"], "no ha sido validada")
	assert.Equal(t, 0, be.count("POST /api/appointments"))
}

func TestCreateBooking_Validation(t *testing.T) {
	be := &backend{me: approvedMe}
	app, store := newApp(t, be)

	req := jsonRequest(http.MethodPost, "/api/bookings", map[string]any{
		"services": []int{}, "date": "2026-09-10", "time": "10:00",
	})
	req.AddCookie(seedSession(store))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Selecciona al menos un servicio, fecha y hora.", decodeBody(t, res)["error"])
	assert.Equal(t, 0, be.count("POST /api/appointments"))
}

func TestCreateBooking_Success(t *testing.T) {
	be := &backend{me: approvedMe}
	app, store := newApp(t, be)

	req := jsonRequest(http.MethodPost, "/api/bookings", map[string]any{
		"services": []int{1, 2},
		"date":     "2026-09-10",
		"time":     "10:30",
		"notes":    "primera visita",
	})
	req.AddCookie(seedSession(store))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, decodeBody(t, res)["message"], "Cita agendada")

	sent := be.lastBody("POST /api/appointments")
	assert.Contains(t, sent, `"date":"2026-09-10T10:30:00.000Z"`)
	assert.Contains(t, sent, `"appointment_status":"pending"`)
	assert.Contains(t, sent, `"services":[1,2]`)
	assert.Contains(t, sent, `"users_permissions_user":7`)
}

func TestCreateBooking_BackendErrorSurfaced(t *testing.T) {
	be := &backend{me: approvedMe, createStatus: http.StatusBadRequest}
	app, store := newApp(t, be)

	req := jsonRequest(http.MethodPost, "/api/bookings", map[string]any{
		"services": []int{1}, "date": "2026-09-10", "time": "10:00",
	})
	req.AddCookie(seedSession(store))
	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "400: fecha no disponible", decodeBody(t, res)["error"])
}
