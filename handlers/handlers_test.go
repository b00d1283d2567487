package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oru-pavam-nair/BJPMission2025-sub001/config"
	"github.com/oru-pavam-nair/BJPMission2025-sub001/loaders"
)

type sheetFetcher map[string]string

func (f sheetFetcher) Fetch(_ context.Context, path string) (string, error) {
	raw, ok := f[path]
	if !ok {
		return "", fmt.Errorf("no such sheet: %s", path)
	}
	return raw, nil
}

func testHandlers() *Handlers {
	config.InitCache()

	fetcher := sheetFetcher{
		"csv/acdata.csv": "t\nh\n" +
			"Thiruvananthapuram,TVM City,TVM North\n" +
			"Thiruvananthapuram,TVM City,Kazhakkoottam\n",
		"csv/mandaldata.csv": "t\nh\n" +
			"Thiruvananthapuram,TVM City,Kazhakkoottam,Kulathoor,Kulathoor Panchayat,Panchayat\n",
		"data/votesharetarget/ac_voteshare.tsv": "t\nh\n" +
			"Thiruvananthapuram\tTVM City\tTVM North\t19.13%\t920488\t25.23%\t1078764\t31.99%\t1889715\n",
		"data/targetdata/ac_targets.csv": "t\nh\n" +
			"Thiruvananthapuram,TVM City,Kazhakkoootam,6,2,4,1,0,1,0,0,0\n",
		"data/contacts/org_contacts.csv": "t\nh\n" +
			"Thiruvananthapuram,TVM City,P Ramesh,9447000004,L Devi,NA\n",
	}

	store := loaders.NewStore(fetcher)
	store.LoadAll(context.Background())
	return NewHandlers(store)
}

func postContext(t *testing.T, handler http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestGetPerformanceReturnsRows(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetPerformance,
		`{"level":"acs","zone":"Thiruvananthapuram","org":"TVM City"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Level string `json:"level"`
		Rows  []struct {
			Name    string `json:"name"`
			LSG2020 struct {
				VS string `json:"vs"`
			} `json:"lsg2020"`
		} `json:"rows"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "TVM North", resp.Rows[0].Name)
	assert.Equal(t, "19.13%", resp.Rows[0].LSG2020.VS)
}

func TestGetPerformanceEmptyContextIsEmptyList(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetPerformance, `{"level":"acs","zone":"","org":""}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows":[]`)
}

func TestGetPerformanceRejectsMissingLevel(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetPerformance, `{"zone":"Thiruvananthapuram"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPerformanceRejectsBadJSON(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetPerformance, `{"level":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTargetsIncludesRollup(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetTargets, `{"level":"zones"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Rows   []json.RawMessage `json:"rows"`
		Rollup struct {
			Name      string `json:"name"`
			Panchayat struct {
				Total int `json:"total"`
			} `json:"panchayat"`
		} `json:"rollup"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Rows, 5)
	assert.Equal(t, "Total", resp.Rollup.Name)
	assert.Equal(t, 941, resp.Rollup.Panchayat.Total)
}

func TestGetContactsTagsShape(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetContacts,
		`{"level":"orgs","zone":"Thiruvananthapuram"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Kind string            `json:"kind"`
		Rows []json.RawMessage `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "org", resp.Kind)
	assert.Len(t, resp.Rows, 1)
}

func TestGetReportBundle(t *testing.T) {
	h := testHandlers()

	w := postContext(t, h.GetReportBundle,
		`{"level":"acs","zone":"Thiruvananthapuram","org":"TVM City"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Title         string            `json:"title"`
		VoteShareData []json.RawMessage `json:"voteShareData"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Kerala Map Report - Thiruvananthapuram - TVM City", resp.Title)
	assert.Len(t, resp.VoteShareData, 1)
}

func TestHierarchyEndpoints(t *testing.T) {
	h := testHandlers()

	w := httptest.NewRecorder()
	h.GetZones(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thiruvananthapuram")

	w = httptest.NewRecorder()
	h.GetOrgs(w, httptest.NewRequest(http.MethodGet, "/?zone=Thiruvananthapuram", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Thiruvananthapuram City")

	w = httptest.NewRecorder()
	h.GetOrgs(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Query values with spaces must be escaped in the request target.
	acsQuery := url.Values{"zone": {"Thiruvananthapuram"}, "org": {"TVM City"}}
	w = httptest.NewRecorder()
	h.GetACs(w, httptest.NewRequest(http.MethodGet, "/?"+acsQuery.Encode(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kazhakkoottam")

	bodiesQuery := url.Values{
		"zone":   {"Thiruvananthapuram"},
		"org":    {"TVM City"},
		"ac":     {"Kazhakoottam"},
		"mandal": {"Kulathoor"},
	}
	w = httptest.NewRecorder()
	h.GetLocalBodies(w, httptest.NewRequest(http.MethodGet, "/?"+bodiesQuery.Encode(), nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Kulathoor Panchayat")
}

func TestGetDetailedHealthDegraded(t *testing.T) {
	h := testHandlers()

	w := httptest.NewRecorder()
	h.GetDetailedHealth(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string          `json:"status"`
		Sheets map[string]bool `json:"sheets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	// The fixture set deliberately omits several sheets.
	assert.Equal(t, "degraded", resp.Status)
	assert.True(t, resp.Sheets["ac-voteshare"])
	assert.False(t, resp.Sheets["mandal-voteshare"])
}
