package dato

import (
	"context"
	"encoding/json"
	"iconpicker/internal/models"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCMA is a minimal in-memory stand-in for the CMA and its storage bucket.
type fakeCMA struct {
	t          *testing.T
	server     *httptest.Server
	mu         sync.Mutex
	objects    map[string]string
	uploads    map[string]string
	jobs       map[string]string
	jobPending int
	parameters json.RawMessage
	fields     map[string]map[string]any
	items      map[string]map[string]any
	headers    []http.Header
	nextID     int
}

func newFakeCMA(t *testing.T) *fakeCMA {
	f := &fakeCMA{
		t:          t,
		objects:    map[string]string{},
		uploads:    map[string]string{},
		jobs:       map[string]string{},
		parameters: json.RawMessage(`{}`),
		fields:     map[string]map[string]any{},
		items:      map[string]map[string]any{},
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCMA) client() *Client {
	return New(Options{
		BaseURL:      f.server.URL,
		APIToken:     "secret",
		Environment:  "sandbox",
		PluginID:     "plugin-1",
		PollInterval: time.Millisecond,
		PollAttempts: 5,
	})
}

func (f *fakeCMA) id(prefix string) string {
	f.nextID++
	return prefix + "-" + strconv.Itoa(f.nextID)
}

func (f *fakeCMA) write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func (f *fakeCMA) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	body, _ := io.ReadAll(r.Body)
	path := r.URL.Path

	if strings.HasPrefix(path, "/bucket/") {
		switch r.Method {
		case http.MethodPut:
			f.objects[path] = string(body)
			w.WriteHeader(http.StatusOK)
		case http.MethodGet:
			content, ok := f.objects[path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = io.WriteString(w, content)
		}
		return
	}

	f.headers = append(f.headers, r.Header.Clone())

	switch {
	case r.Method == http.MethodPost && path == "/upload-requests":
		var doc struct {
			Data struct {
				Attributes struct {
					Filename string `json:"filename"`
				} `json:"attributes"`
			} `json:"data"`
		}
		assert.NoError(f.t, json.Unmarshal(body, &doc))
		objectPath := "/bucket/" + doc.Data.Attributes.Filename
		f.write(w, http.StatusOK, `{"data":{"id":"`+objectPath+`","type":"upload_request","attributes":{"url":"`+f.server.URL+objectPath+`","request_headers":{"X-Amz-Acl":"private"}}}}`)

	case r.Method == http.MethodPost && path == "/uploads":
		var doc struct {
			Data struct {
				Attributes struct {
					Path string `json:"path"`
				} `json:"attributes"`
			} `json:"data"`
		}
		assert.NoError(f.t, json.Unmarshal(body, &doc))
		jobID := f.id("job")
		f.jobs[jobID] = doc.Data.Attributes.Path
		f.write(w, http.StatusAccepted, `{"data":{"id":"`+jobID+`","type":"job"}}`)

	case r.Method == http.MethodGet && strings.HasPrefix(path, "/job-results/"):
		jobID := strings.TrimPrefix(path, "/job-results/")
		if f.jobPending > 0 {
			f.jobPending--
			f.write(w, http.StatusNotFound, `{"data":[{"id":"x","type":"api_error","attributes":{"code":"NOT_FOUND"}}]}`)
			return
		}
		uploadID := f.id("upload")
		f.uploads[uploadID] = f.jobs[jobID]
		f.write(w, http.StatusOK, `{"data":{"id":"`+jobID+`","type":"job_result","attributes":{"status":201,"payload":{"data":{"id":"`+uploadID+`","type":"upload"}}}}}`)

	case strings.HasPrefix(path, "/uploads/"):
		uploadID := strings.TrimPrefix(path, "/uploads/")
		objectPath, ok := f.uploads[uploadID]
		if !ok {
			f.write(w, http.StatusNotFound, `{"data":[{"id":"x","type":"api_error","attributes":{"code":"NOT_FOUND"}}]}`)
			return
		}
		if r.Method == http.MethodDelete {
			delete(f.uploads, uploadID)
			f.write(w, http.StatusOK, `{"data":{"id":"`+uploadID+`","type":"upload","attributes":{}}}`)
			return
		}
		f.write(w, http.StatusOK, `{"data":{"id":"`+uploadID+`","type":"upload","attributes":{"url":"`+f.server.URL+objectPath+`"}}}`)

	case path == "/plugins/plugin-1" && r.Method == http.MethodGet:
		f.write(w, http.StatusOK, `{"data":{"id":"plugin-1","type":"plugin","attributes":{"parameters":`+string(f.parameters)+`}}}`)

	case path == "/plugins/plugin-1" && r.Method == http.MethodPut:
		var doc struct {
			Data struct {
				Attributes struct {
					Parameters json.RawMessage `json:"parameters"`
				} `json:"attributes"`
			} `json:"data"`
		}
		assert.NoError(f.t, json.Unmarshal(body, &doc))
		f.parameters = doc.Data.Attributes.Parameters
		f.write(w, http.StatusOK, `{"data":{"id":"plugin-1","type":"plugin","attributes":{}}}`)

	case path == "/item-types":
		f.write(w, http.StatusOK, `{"data":[{"id":"model-1","type":"item_type","attributes":{}},{"id":"model-2","type":"item_type","attributes":{}}]}`)

	case path == "/item-types/model-1/fields":
		f.write(w, http.StatusOK, `{"data":[
			{"id":"field-1","type":"field","attributes":{"api_key":"icon","appearance":{"editor":"plugin-1","parameters":{},"addons":[]}}},
			{"id":"field-2","type":"field","attributes":{"api_key":"title","appearance":{"editor":"single_line","parameters":{},"addons":[]}}}
		]}`)

	case path == "/item-types/model-2/fields":
		f.write(w, http.StatusOK, `{"data":[
			{"id":"field-3","type":"field","attributes":{"api_key":"badge","appearance":{"editor":"plugin-1","field_extension":"icon-picker-fields","parameters":{},"addons":[{"id":"a"}]}}}
		]}`)

	case strings.HasPrefix(path, "/fields/") && r.Method == http.MethodGet:
		fieldID := strings.TrimPrefix(path, "/fields/")
		f.write(w, http.StatusOK, `{"data":{"id":"`+fieldID+`","type":"field","attributes":{"appearance":{"editor":"plugin-1","parameters":{"size":"l"},"addons":[{"id":"a"}]}}}}`)

	case strings.HasPrefix(path, "/fields/") && r.Method == http.MethodPut:
		var doc struct {
			Data struct {
				Attributes map[string]any `json:"attributes"`
			} `json:"data"`
		}
		assert.NoError(f.t, json.Unmarshal(body, &doc))
		f.fields[strings.TrimPrefix(path, "/fields/")] = doc.Data.Attributes
		f.write(w, http.StatusOK, `{"data":{"id":"x","type":"field","attributes":{}}}`)

	case strings.HasPrefix(path, "/items/") && r.Method == http.MethodGet:
		attributes, ok := f.items[strings.TrimPrefix(path, "/items/")]
		if !ok {
			attributes = map[string]any{}
		}
		data, err := json.Marshal(attributes)
		assert.NoError(f.t, err)
		f.write(w, http.StatusOK, `{"data":{"id":"x","type":"item","attributes":`+string(data)+`}}`)

	case strings.HasPrefix(path, "/items/") && r.Method == http.MethodPut:
		var doc struct {
			Data struct {
				Attributes map[string]any `json:"attributes"`
			} `json:"data"`
		}
		assert.NoError(f.t, json.Unmarshal(body, &doc))
		f.items[strings.TrimPrefix(path, "/items/")] = doc.Data.Attributes
		f.write(w, http.StatusOK, `{"data":{"id":"x","type":"item","attributes":{}}}`)

	default:
		f.write(w, http.StatusUnprocessableEntity, `{"data":[{"id":"x","type":"api_error","attributes":{"code":"INVALID_FIELD"}}]}`)
	}
}

func TestClient_CreateAndFetchAsset(t *testing.T) {
	fake := newFakeCMA(t)
	fake.jobPending = 2
	c := fake.client()

	id, err := c.CreateAsset(context.Background(), `["a"]`, models.IconsAssetName, models.ContentTypeJSON)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, `["a"]`, fake.objects["/bucket/"+models.IconsAssetName])

	content, err := c.FetchAsset(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, content)
}

func TestClient_SendsApiHeaders(t *testing.T) {
	fake := newFakeCMA(t)
	_, err := fake.client().Load(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, fake.headers)
	h := fake.headers[0]
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
	assert.Equal(t, "3", h.Get("X-Api-Version"))
	assert.Equal(t, "sandbox", h.Get("X-Environment"))
}

func TestClient_CreateAssetJobTimeout(t *testing.T) {
	fake := newFakeCMA(t)
	fake.jobPending = 100
	_, err := fake.client().CreateAsset(context.Background(), "body{}", models.StylesAssetName, models.ContentTypeCSS)
	assert.ErrorIs(t, err, ErrJobTimeout)
}

func TestClient_FetchAssetMissingUpload(t *testing.T) {
	fake := newFakeCMA(t)
	_, err := fake.client().FetchAsset(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestClient_FetchAssetStorageFailure(t *testing.T) {
	fake := newFakeCMA(t)
	fake.uploads["upload-x"] = "/bucket/missing.json"

	_, err := fake.client().FetchAsset(context.Background(), "upload-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch asset content: 404")
}

func TestClient_DeleteAsset(t *testing.T) {
	fake := newFakeCMA(t)
	fake.uploads["upload-x"] = "/bucket/x"

	require.NoError(t, fake.client().DeleteAsset(context.Background(), "upload-x"))
	assert.NotContains(t, fake.uploads, "upload-x")
}

func TestClient_LoadAndReplaceParameters(t *testing.T) {
	fake := newFakeCMA(t)
	fake.parameters = json.RawMessage(`{"icons":"[\"a\"]","filters":"[]","styles":"body{}","generalOptions":"{}"}`)
	c := fake.client()

	params, err := c.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, models.NeedsMigration(params))

	next := models.WithAssets(params.GeneralOptions, models.AssetIDs{Icons: "1", Filters: "2", Styles: "3"}, false)
	require.NoError(t, c.Replace(context.Background(), next))
	assert.JSONEq(t, `{"generalOptions":"{}","iconsAssetId":"1","filtersAssetId":"2","stylesAssetId":"3","migratedToAssets":true}`, string(fake.parameters))
}

func TestClient_APIErrorCarriesCode(t *testing.T) {
	fake := newFakeCMA(t)
	err := fake.client().do(context.Background(), http.MethodGet, "/unknown", nil, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "INVALID_FIELD", apiErr.Code)
	assert.Equal(t, "GET /unknown: 422 INVALID_FIELD", apiErr.Error())
}

func TestClient_FieldsUsingPlugin(t *testing.T) {
	fake := newFakeCMA(t)
	fields, err := fake.client().FieldsUsingPlugin(context.Background())
	require.NoError(t, err)

	require.Len(t, fields, 2)
	assert.Equal(t, "field-1", fields[0].ID)
	assert.Equal(t, "model-1", fields[0].ItemTypeID)
	assert.Equal(t, "icon", fields[0].APIKey)
	assert.Equal(t, "field-3", fields[1].ID)
	assert.Equal(t, "icon-picker-fields", fields[1].FieldExtension)
}

func TestClient_UpdateEditorKeepsAddons(t *testing.T) {
	fake := newFakeCMA(t)
	require.NoError(t, fake.client().UpdateEditor(context.Background(), "field-1", "icon-picker-fields"))

	appearance := fake.fields["field-1"]["appearance"].(map[string]any)
	assert.Equal(t, "plugin-1", appearance["editor"])
	assert.Equal(t, "icon-picker-fields", appearance["field_extension"])
	assert.Equal(t, map[string]any{"size": "l"}, appearance["parameters"])
	assert.Len(t, appearance["addons"], 1)
}

func TestClient_SetFieldValue(t *testing.T) {
	fake := newFakeCMA(t)
	c := fake.client()

	value := models.EncodeFieldValue("fa-home")
	require.NoError(t, c.SetFieldValue(context.Background(), "item-1", "icon", &value))
	assert.Equal(t, `{"icon":"fa-home"}`, fake.items["item-1"]["icon"])

	require.NoError(t, c.SetFieldValue(context.Background(), "item-2", "icon.en", nil))
	assert.Equal(t, map[string]any{"en": nil}, fake.items["item-2"]["icon"])
}

func TestClient_SetLocalizedFieldKeepsOtherLocales(t *testing.T) {
	fake := newFakeCMA(t)
	fake.items["item-1"] = map[string]any{"icon": map[string]any{"en": "old", "it": `{"icon":"fa-star"}`}}
	c := fake.client()

	value := models.EncodeFieldValue("fa-home")
	require.NoError(t, c.SetFieldValue(context.Background(), "item-1", "icon.en", &value))
	assert.Equal(t, map[string]any{"en": `{"icon":"fa-home"}`, "it": `{"icon":"fa-star"}`}, fake.items["item-1"]["icon"])
}

func TestClient_SetFieldValueRejectsBadPaths(t *testing.T) {
	fake := newFakeCMA(t)
	c := fake.client()
	fake.items["item-1"] = map[string]any{"icon": "plain"}

	for _, path := range []string{"icon.en.x", "icon.", ".en"} {
		assert.ErrorIs(t, c.SetFieldValue(context.Background(), "item-1", path, nil), errFieldPath, path)
	}
	assert.ErrorIs(t, c.SetFieldValue(context.Background(), "item-1", "icon.en", nil), errFieldPath)
	assert.Equal(t, "plain", fake.items["item-1"]["icon"])
}

func TestClient_LoadErrorIsNotRewrapped(t *testing.T) {
	fake := newFakeCMA(t)
	c := New(Options{BaseURL: fake.server.URL, PluginID: "missing"})

	_, err := c.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "GET /plugins/missing: 422 INVALID_FIELD", err.Error())
}
