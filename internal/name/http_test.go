// Copyright (c) 2026 Mingyuan. All rights reserved.
// Author: dev@mingyuan.app

package name_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qiminglab/mingyuan/internal/name"
	"github.com/qiminglab/mingyuan/internal/platform/apperr"
)

func newTestHandler(repo *fakeRepository) http.Handler {
	return name.NewHandler(name.NewService(repo, testLogger())).Routes()
}

func doRequest(t *testing.T, handler http.Handler, target string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder, body
}

/*
TestHTTP_DetailFound verifies the success envelope of the detail endpoint.
The surname parameter is accepted and ignored.
*/
func TestHTTP_DetailFound(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	recorder, body := doRequest(t, handler, "/detail?surname=王&name=明轩")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "明轩", data["name"])
	assert.Equal(t, "<p>明轩</p>", data["content"])
}

/*
TestHTTP_DetailMissingName verifies that an absent name parameter is a
client error with the standard failure envelope — never a server error.
*/
func TestHTTP_DetailMissingName(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	recorder, body := doRequest(t, handler, "/detail?surname=王")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

/*
TestHTTP_DetailNotFound verifies the 404 failure envelope.
*/
func TestHTTP_DetailNotFound(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	recorder, body := doRequest(t, handler, "/detail?name=不存在")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, false, body["success"])
}

/*
TestHTTP_SearchSampleEnvelope verifies the sample-mode envelope: data,
page, pageSize, and no seed.
*/
func TestHTTP_SearchSampleEnvelope(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	recorder, body := doRequest(t, handler, "/search?lastName=李&pageSize=4")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(4), body["pageSize"])
	assert.NotContains(t, body, "seed")

	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, data)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	fullName, ok := first["fullName"].(string)
	require.True(t, ok)
	assert.Equal(t, "李", fullName[:len("李")])
}

/*
TestHTTP_SearchSeededEnvelope verifies that a supplied seed is echoed and
that mode=seeded without a seed generates one.
*/
func TestHTTP_SearchSeededEnvelope(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	_, pinned := doRequest(t, handler, "/search?seed=abc&page=2&pageSize=3")
	assert.Equal(t, true, pinned["success"])
	assert.Equal(t, "abc", pinned["seed"])
	assert.Equal(t, float64(2), pinned["page"])

	_, generated := doRequest(t, handler, "/search?mode=seeded&pageSize=3")
	assert.Equal(t, true, generated["success"])
	assert.NotEmpty(t, generated["seed"])
}

/*
TestHTTP_SearchEmptyResultIsSuccess verifies the empty-match envelope keeps
data as an empty array rather than null or an error.
*/
func TestHTTP_SearchEmptyResultIsSuccess(t *testing.T) {
	handler := newTestHandler(&fakeRepository{records: namesFixture()})

	recorder, body := doRequest(t, handler, "/search?containChar=龍")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

/*
TestHTTP_SearchStoreUnavailable verifies the server-error envelope on store
failure: success:false with a 503 status and no internal detail leaked.
*/
func TestHTTP_SearchStoreUnavailable(t *testing.T) {
	handler := newTestHandler(&fakeRepository{err: apperr.Unavailable(assert.AnError)})

	recorder, body := doRequest(t, handler, "/search")

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body["message"], assert.AnError.Error())
}
