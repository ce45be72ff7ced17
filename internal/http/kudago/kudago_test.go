package kudago

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL)
}

func TestFetchEventsDropsUnsetParams(t *testing.T) {
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"count": 0, "results": []}`))
	})

	_, status, err := client.FetchEvents(context.Background(), EventsParams{})
	if err != nil {
		t.Fatalf("FetchEvents returned error %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("status = %d; want 200", status)
	}
	if len(gotQuery) != 0 {
		t.Errorf("expected no query parameters, got %v", gotQuery)
	}
}

func TestFetchEventsForwardsSetParams(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{}`))
	})

	page := 2
	pageSize := 50
	since := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	_, _, err := client.FetchEvents(context.Background(), EventsParams{
		Page:        &page,
		PageSize:    &pageSize,
		TextFormat:  TextFormatText,
		Location:    LocationSPB,
		ActualSince: since,
	})
	if err != nil {
		t.Fatalf("FetchEvents returned error %v", err)
	}

	if gotPath != "/events/" {
		t.Errorf("path = %q; want /events/", gotPath)
	}

	expected := map[string]string{
		"page":         "2",
		"page_size":    "50",
		"text_format":  "text",
		"location":     "spb",
		"actual_since": "1709294400",
	}
	for key, want := range expected {
		if got := gotQuery.Get(key); got != want {
			t.Errorf("query %s = %q; want %q", key, got, want)
		}
	}
	if len(gotQuery) != len(expected) {
		t.Errorf("unexpected extra query parameters: %v", gotQuery)
	}
}

func TestFetchEventsReturnsRawBodyAndStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"detail": "throttled"}`))
	})

	body, status, err := client.FetchEvents(context.Background(), EventsParams{})
	if err != nil {
		t.Fatalf("FetchEvents returned error %v", err)
	}
	if status != http.StatusTooManyRequests {
		t.Errorf("status = %d; want 429", status)
	}
	if string(body) != `{"detail": "throttled"}` {
		t.Errorf("body = %q; want raw upstream body", body)
	}
}

func TestParseEvents(t *testing.T) {
	body := []byte(`{
		"count": 1,
		"next": null,
		"previous": null,
		"results": [{
			"id": 12345,
			"title": "Концерт",
			"slug": "koncert",
			"dates": [{"start": 1709294400, "end": 1709301600}],
			"location": {"slug": "spb"},
			"categories": ["concert"],
			"is_free": false,
			"price": "от 500 рублей"
		}]
	}`)

	page, err := ParseEvents(body)
	if err != nil {
		t.Fatalf("ParseEvents returned error %v", err)
	}
	if page.Count != 1 || len(page.Results) != 1 {
		t.Fatalf("unexpected page shape: %+v", page)
	}

	event := page.Results[0]
	if event.ID != 12345 || event.Title != "Концерт" {
		t.Errorf("unexpected event: %+v", event)
	}
	if len(event.Dates) != 1 || event.Dates[0].Start != 1709294400 {
		t.Errorf("unexpected dates: %+v", event.Dates)
	}
	if event.Location.Slug != "spb" {
		t.Errorf("location slug = %q; want spb", event.Location.Slug)
	}
}
