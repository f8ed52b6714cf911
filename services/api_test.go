package services

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xairline/xa-datarefs/models"
)

var apiSchema = []models.Dataref{
	{Name: "acf_num_tanks", DatarefStr: "sim/aircraft/overflow/acf_num_tanks", Type: models.TypeInt},
	{Name: "acf_auto_trimEQ", DatarefStr: "sim/aircraft/overflow/acf_auto_trimeq", Type: models.TypeBool},
	{Name: "acf_critalt", DatarefStr: "sim/aircraft/engine/acf_critalt", Type: models.TypeFloat},
	{Name: "red_hi_EGT", DatarefStr: "sim/aircraft/limits/red_hi_EGT", Type: models.TypeFloat},
	{Name: "g430_is_vloc", DatarefStr: "sim/operation/g430/g430_is_vloc", Type: models.TypeBoolArray},
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApi(t *testing.T) (*Harness, ApiService) {
	h, store := newTestStore(t)
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 2)
	h.SetDataRefi("sim/aircraft/overflow/acf_auto_trimeq", 1)
	h.SetDataReff("sim/aircraft/engine/acf_critalt", 3000.456)
	h.SetDataReff("sim/aircraft/limits/red_hi_EGT", 850)
	h.SetReadOnly("sim/aircraft/limits/red_hi_EGT")
	h.SetDataRefiv("sim/operation/g430/g430_is_vloc", []int{0, 1})
	h.SetDataRefd("sim/flightmodel/position/latitude", 51.418441)
	return h, NewApiService(newMockLogger(t), store, NewInlineDispatcher(), nil, apiSchema)
}

func serve(api ApiService, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	api.Router().ServeHTTP(w, req)
	return w
}

func TestApiListDatarefs(t *testing.T) {
	_, api := newTestApi(t)

	w := serve(api, http.MethodGet, "/apis/datarefs", "")
	require.Equal(t, http.StatusOK, w.Code)
	var all []models.Dataref
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &all))
	assert.Equal(t, apiSchema, all)

	w = serve(api, http.MethodGet, "/apis/datarefs?namespace=sim/aircraft/overflow/", "")
	require.Equal(t, http.StatusOK, w.Code)
	var overflow []models.Dataref
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &overflow))
	assert.Equal(t, apiSchema[:2], overflow)
}

func TestApiGetValue(t *testing.T) {
	_, api := newTestApi(t)

	for name, tc := range map[string]struct {
		target string
		code   int
		value  interface{}
	}{
		"int":           {"/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_num_tanks", http.StatusOK, 2.0},
		"bool":          {"/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_auto_trimeq", http.StatusOK, true},
		"precision":     {"/apis/datarefs/value?dataref=sim/aircraft/engine/acf_critalt&precision=1", http.StatusOK, 3000.5},
		"bool array":    {"/apis/datarefs/value?dataref=sim/operation/g430/g430_is_vloc", http.StatusOK, []interface{}{false, true}},
		"ad hoc type":   {"/apis/datarefs/value?dataref=sim/flightmodel/position/latitude&type=double", http.StatusOK, 51.418441},
		"type ignored":  {"/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_num_tanks&type=float", http.StatusOK, 2.0},
		"unresolved":    {"/apis/datarefs/value?dataref=sim/flightmodel/position/longitude&type=double", http.StatusBadGateway, nil},
		"unknown":       {"/apis/datarefs/value?dataref=sim/none", http.StatusNotFound, nil},
		"bad type":      {"/apis/datarefs/value?dataref=sim/none&type=vec3", http.StatusNotFound, nil},
		"bad precision": {"/apis/datarefs/value?dataref=sim/aircraft/engine/acf_critalt&precision=x", http.StatusBadRequest, nil},
	} {
		t.Run(name, func(t *testing.T) {
			w := serve(api, http.MethodGet, tc.target, "")
			require.Equal(t, tc.code, w.Code, w.Body.String())
			if tc.code != http.StatusOK {
				return
			}
			var v models.DatarefValue
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
			assert.Equal(t, tc.value, v.Value)
		})
	}
}

func TestApiGetValueUnresolved(t *testing.T) {
	h, store := newTestStore(t)
	api := NewApiService(newMockLogger(t), store, NewInlineDispatcher(), nil, apiSchema)

	w := serve(api, http.MethodGet, "/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_num_tanks", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// the host ref appears later and the same request now succeeds
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 6)
	w = serve(api, http.MethodGet, "/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_num_tanks", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestApiSetValue(t *testing.T) {
	h, api := newTestApi(t)

	w := serve(api, http.MethodPut, "/apis/datarefs/value", `{"request":{"dataref":"sim/aircraft/overflow/acf_num_tanks","value":4}}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, 4, h.GetIntData(mustFind(t, h, "sim/aircraft/overflow/acf_num_tanks")))

	w = serve(api, http.MethodPut, "/apis/datarefs/value", `{"request":{"dataref":"sim/operation/g430/g430_is_vloc","value":[true,true]}}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, []int{1, 1}, h.GetIntArrayData(mustFind(t, h, "sim/operation/g430/g430_is_vloc")))

	for name, tc := range map[string]struct {
		body string
		code int
	}{
		"read only":   {`{"request":{"dataref":"sim/aircraft/limits/red_hi_EGT","value":900}}`, http.StatusForbidden},
		"bad value":   {`{"request":{"dataref":"sim/aircraft/overflow/acf_num_tanks","value":"two"}}`, http.StatusBadRequest},
		"bad body":    {`{"request":`, http.StatusBadRequest},
		"unknown key": {`{"request":{"dataref":"sim/none","value":1}}`, http.StatusNotFound},
	} {
		t.Run(name, func(t *testing.T) {
			w := serve(api, http.MethodPut, "/apis/datarefs/value", tc.body)
			assert.Equal(t, tc.code, w.Code, w.Body.String())
		})
	}
	egt, _ := NewDatarefService(newMockLogger(t), h).GetFloat("sim/aircraft/limits/red_hi_EGT").Value()
	assert.Equal(t, float32(850), egt)
}

func TestApiDispatchTimeout(t *testing.T) {
	_, store := newTestStore(t)
	// nothing drains the queue
	api := NewApiService(newMockLogger(t), store, NewQueueDispatcher(newMockLogger(t), 1), nil, apiSchema)

	req := httptest.NewRequest(http.MethodGet, "/apis/datarefs/value?dataref=sim/aircraft/overflow/acf_num_tanks", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 20*time.Millisecond)
	defer cancel()
	w := httptest.NewRecorder()
	api.Router().ServeHTTP(w, req.WithContext(ctx))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestApiTimedOutWriteIsNotApplied(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 2)
	d := NewQueueDispatcher(newMockLogger(t), 1)
	api := NewApiService(newMockLogger(t), store, d, nil, apiSchema)

	body := `{"request":{"dataref":"sim/aircraft/overflow/acf_num_tanks","value":9}}`
	req := httptest.NewRequest(http.MethodPut, "/apis/datarefs/value", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	ctx, cancel := context.WithTimeout(req.Context(), 20*time.Millisecond)
	defer cancel()
	w := httptest.NewRecorder()
	api.Router().ServeHTTP(w, req.WithContext(ctx))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	// the next frame must not apply the write the client was told failed
	assert.Equal(t, 0, d.Drain())
	assert.Equal(t, 2, h.GetIntData(mustFind(t, h, "sim/aircraft/overflow/acf_num_tanks")))
}

func TestApiEmptyArrayWrite(t *testing.T) {
	h, api := newTestApi(t)
	w := serve(api, http.MethodPut, "/apis/datarefs/value", `{"request":{"dataref":"sim/operation/g430/g430_is_vloc","value":[]}}`)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())
	assert.Equal(t, []int{0, 1}, h.GetIntArrayData(mustFind(t, h, "sim/operation/g430/g430_is_vloc")), "an empty write leaves the array untouched")
}

func TestApiNonFiniteValue(t *testing.T) {
	h, api := newTestApi(t)
	h.SetDataReff("sim/aircraft/engine/acf_critalt", float32(math.Inf(-1)))
	w := serve(api, http.MethodGet, "/apis/datarefs/value?dataref=sim/aircraft/engine/acf_critalt", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"name":"sim/aircraft/engine/acf_critalt","dataref_type":"float","value":null}`, w.Body.String())
}

func TestApiWatch(t *testing.T) {
	h, store := newTestStore(t)
	h.SetDataRefi("sim/aircraft/overflow/acf_num_tanks", 2)

	api := NewApiService(newMockLogger(t), store, NewInlineDispatcher(), nil, apiSchema)
	w := serve(api, http.MethodGet, "/apis/watch", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	watcher := NewWatcher(newMockLogger(t), store, -1)
	watcher.Watch(apiSchema[0])
	watcher.Poll()
	api = NewApiService(newMockLogger(t), store, NewInlineDispatcher(), watcher, apiSchema)
	w = serve(api, http.MethodGet, "/apis/watch", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"sim/aircraft/overflow/acf_num_tanks","dataref_type":"int","value":2}]`, w.Body.String())
}

func TestApiShutdownWithoutStart(t *testing.T) {
	_, api := newTestApi(t)
	assert.NoError(t, api.Shutdown(context.Background()))
}
