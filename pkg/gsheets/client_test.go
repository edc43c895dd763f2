package gsheets_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"delivery-agent/pkg/gsheets"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gsheets.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gsheets.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestRanges(t *testing.T) {
	if got := gsheets.ColumnRange("Customers", "A", "E"); got != "Customers!A:E" {
		t.Errorf("ColumnRange() = %s", got)
	}
	if got := gsheets.RowRange("Customers", "A", "E", 3); got != "Customers!A3:E3" {
		t.Errorf("RowRange() = %s", got)
	}
}

func TestCredentials(t *testing.T) {
	t.Run("broken JSON", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := gsheets.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("broken file", func(t *testing.T) {
		tmpFile, _ := os.CreateTemp(t.TempDir(), "creds.json")
		tmpFile.WriteString(`{"broken":true}`)
		tmpFile.Close()

		if _, err := gsheets.NewClientFromCredentialsFile(context.Background(), tmpFile.Name()); err == nil {
			t.Errorf("expected failure loading broken file")
		}
	})
}

func TestGetValues(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/sheet-1/values/") {
			w.Write([]byte(`{
				"range": "Customers!A1:E2",
				"values": [["name","phone","email","address","lastOrder"],["דני לוי","0521234567","","תל אביב",""]]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	rows, err := client.GetValues(context.Background(), "sheet-1", "Customers!A:E")
	if err != nil {
		t.Fatalf("failed to read values: %v", err)
	}
	if len(rows) != 2 || rows[1][1] != "0521234567" || rows[1][0] != "דני לוי" {
		t.Errorf("unexpected rows: %v", rows)
	}
}

func TestAppendAndUpdateValues(t *testing.T) {
	var appended, updated bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("valueInputOption") != gsheets.ValueInputUserEntered {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var body struct {
			Values [][]string `json:"values"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Values) != 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		switch {
		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, ":append"):
			appended = true
		case r.Method == http.MethodPut:
			updated = true
		default:
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{}`))
	})

	row := gsheets.Row{"2025-11-09T10:30:00Z", "דני", "0521234567", "hi", "שלום"}
	if err := client.AppendValues(context.Background(), "sheet-1", "ChatLogs!A:E", []gsheets.Row{row}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if err := client.UpdateValues(context.Background(), "sheet-1", "Customers!A2:E2", []gsheets.Row{row}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !appended || !updated {
		t.Errorf("expected both append and update to reach the server (append=%v update=%v)", appended, updated)
	}
}

func TestGetValues_Error(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := client.GetValues(context.Background(), "sheet-1", "Customers!A:E"); err == nil {
		t.Fatal("expected api error")
	}
}
