package rest

import (
	"net/url"
	"testing"
	"time"

	"github.com/resonanse/resonanse_api/internal/http/kudago"
)

func TestFeedParamsFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("page", "3")
	q.Set("page_size", "20")
	q.Set("location", "msk")
	q.Set("text_format", "plain")
	q.Set("is_free", "true")
	q.Set("actual_since", "1709294400")
	q.Set("lon", "37.62")
	q.Set("radius", "1000")

	params := feedParamsFromQuery(q)

	if params.Page == nil || *params.Page != 3 {
		t.Errorf("Page = %v; want 3", params.Page)
	}
	if params.PageSize == nil || *params.PageSize != 20 {
		t.Errorf("PageSize = %v; want 20", params.PageSize)
	}
	if params.Location != kudago.LocationMSK {
		t.Errorf("Location = %q; want msk", params.Location)
	}
	if params.TextFormat != kudago.TextFormatPlain {
		t.Errorf("TextFormat = %q; want plain", params.TextFormat)
	}
	if params.IsFree == nil || !*params.IsFree {
		t.Errorf("IsFree = %v; want true", params.IsFree)
	}
	if want := time.Unix(1709294400, 0); !params.ActualSince.Equal(want) {
		t.Errorf("ActualSince = %v; want %v", params.ActualSince, want)
	}
	if params.Lon == nil || *params.Lon != 37.62 {
		t.Errorf("Lon = %v; want 37.62", params.Lon)
	}
	if params.Radius == nil || *params.Radius != 1000 {
		t.Errorf("Radius = %v; want 1000", params.Radius)
	}
	if params.Lat != nil {
		t.Errorf("Lat = %v; want nil for unset parameter", params.Lat)
	}
}

func TestFeedParamsFromQueryEmpty(t *testing.T) {
	params := feedParamsFromQuery(url.Values{})

	if params.Page != nil || params.PageSize != nil || params.IsFree != nil {
		t.Errorf("expected nil optional parameters, got %+v", params)
	}
	if !params.ActualSince.IsZero() || !params.ActualUntil.IsZero() {
		t.Error("expected zero time bounds for unset parameters")
	}
	if params.Lang != "" || params.Location != "" || params.TextFormat != "" {
		t.Errorf("expected empty string parameters, got %+v", params)
	}
}
