package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shelter-registry/internal/router"
)

func TestHTTP_EndToEnd_CreateListGet(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	userID := "volunteer-1"

	// 1) Sin usuario no se puede cadastrar
	{
		st, body := doReq(t, ts.URL, "POST", "/shelters", "", map[string]any{
			"name":    "Abrigo Central",
			"address": "Rua A, 10",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without user, got %d body=%s", st, string(body))
		}
	}

	// 2) Cadastro válido
	shelterID := createShelter(t, ts.URL, userID, map[string]any{
		"name":            "Abrigo Central <b>",
		"address":         "Rua A & B, 10",
		"shelteredPeople": 12,
		"capacity":        40,
		"verified":        false,
		"petFriendly":     true,
		"contact":         "(51) 99999-0000",
		"pix":             nil,
	})

	// 3) Detalle
	{
		st, body := doReq(t, ts.URL, "GET", "/shelters/"+shelterID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get shelter, got %d body=%s", st, string(body))
		}
		var got map[string]any
		_ = json.Unmarshal(body, &got)
		if got["name"] != "Abrigo Central" {
			t.Fatalf("expected markup stripped from name, got %v", got["name"])
		}
		if got["address"] != "Rua A & B, 10" {
			t.Fatalf("expected ampersand kept, got %v", got["address"])
		}
		if got["pix"] != nil {
			t.Fatalf("expected null pix, got %v", got["pix"])
		}
		if got["capacity"] != float64(40) {
			t.Fatalf("expected capacity 40, got %v", got["capacity"])
		}
	}

	// 4) Listado
	{
		st, body := doReq(t, ts.URL, "GET", "/shelters", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0]["id"] != shelterID {
			t.Fatalf("expected 1 shelter in list, got %s", string(body))
		}
	}

	// 5) Inexistente
	{
		st, _ := doReq(t, ts.URL, "GET", "/shelters/nope", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}
}

func TestHTTP_CreateShelter_RejectsInvalid(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/shelters", "volunteer-1", map[string]any{
		"name":     "   ",
		"address":  "Rua A",
		"capacity": 0,
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", st, string(body))
	}

	var resp struct {
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("expected json error body, got %s", string(body))
	}
	if resp.Fields["name"] == "" || resp.Fields["capacity"] == "" {
		t.Fatalf("expected name and capacity field errors, got %#v", resp.Fields)
	}
	if !strings.Contains(resp.Message, "capacity: O valor mínimo para este campo é 1") {
		t.Fatalf("expected readable message, got %q", resp.Message)
	}
}

func TestHTTP_CreateShelter_InvalidJSON(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	req, _ := http.NewRequest("POST", ts.URL+"/shelters", strings.NewReader("{"))
	req.Header.Set("X-Debug-User-ID", "volunteer-1")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid json, got %d", res.StatusCode)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, _ := doReq(t, ts.URL, "GET", "/health", "", nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 swagger doc, got %d", st)
	}
	if !strings.Contains(string(body), "/shelters") {
		t.Fatalf("expected shelters path in swagger doc")
	}
}

func createShelter(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/shelters", userID, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create shelter, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create shelter: missing id body=%s", string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
