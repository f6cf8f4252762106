package storefront

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/khaled-dev-loper/SteamStorefrontAPI/pkg/httpclient"
)

type mockResponse struct {
	body       []byte
	statusCode int
}

func (r mockResponse) Body() []byte    { return r.body }
func (r mockResponse) StatusCode() int { return r.statusCode }

// mockHTTPClient answers every Get with a fixed body/status, optionally
// checking the requested URL and counting calls.
type mockHTTPClient struct {
	t         *testing.T
	expectURL string
	status    int
	body      string
	err       error

	mu    sync.Mutex
	calls int
}

func (m *mockHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()

	if m.expectURL != "" && url != m.expectURL {
		m.t.Errorf("expected url %q, got %q", m.expectURL, url)
	}
	if m.err != nil {
		return nil, m.err
	}
	status := m.status
	if status == 0 {
		status = 200
	}
	return mockResponse{body: []byte(m.body), statusCode: status}, nil
}

func (m *mockHTTPClient) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

const cs2Fixture = `{"460810": {"success": true, "data": {"name": "Counter-Strike 2", "type": "game"}}}`

func TestGetAppDetailsBuildsURLWithCountry(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/appdetails?appids=460810&cc=US",
		body:      cs2Fixture,
	}

	app, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 460810, "US")
	if err != nil {
		t.Fatalf("GetAppDetails returned error: %v", err)
	}
	if app.Name != "Counter-Strike 2" {
		t.Errorf("Name = %q", app.Name)
	}
	if client.callCount() != 1 {
		t.Errorf("expected exactly 1 request, got %d", client.callCount())
	}
}

func TestGetAppDetailsOmitsCountryWhenEmpty(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/appdetails?appids=460810",
		body:      cs2Fixture,
	}

	if _, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 460810, ""); err != nil {
		t.Fatalf("GetAppDetails returned error: %v", err)
	}
}

func TestGetAppDetailsMissingPriceBlockMapsToNil(t *testing.T) {
	client := &mockHTTPClient{t: t, body: cs2Fixture}

	app, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 460810, "")
	if err != nil {
		t.Fatalf("GetAppDetails returned error: %v", err)
	}
	if app.PriceOverview != nil {
		t.Errorf("expected absent price block to map to nil, got %+v", app.PriceOverview)
	}
	if app.Screenshots != nil || app.Movies != nil {
		t.Errorf("expected absent media arrays to stay nil")
	}
	if app.SteamAppID != 460810 {
		t.Errorf("SteamAppID = %d", app.SteamAppID)
	}
}

func TestGetAppDetailsNotFound(t *testing.T) {
	cases := map[string]string{
		"success false":  `{"999": {"success": false}}`,
		"absent success": `{"999": {}}`,
		"missing id key": `{}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := &mockHTTPClient{t: t, body: body}
			_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 999, "")

			var notFound *NotFoundError
			if !errors.As(err, &notFound) {
				t.Fatalf("expected NotFoundError, got %v", err)
			}
			if notFound.ID != 999 || notFound.Kind != "app" {
				t.Errorf("unexpected error details: %+v", notFound)
			}
		})
	}
}

func TestGetAppDetailsMissingNameIsParseError(t *testing.T) {
	client := &mockHTTPClient{t: t, body: `{"10": {"success": true, "data": {"type": "game"}}}`}

	_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 10, "")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGetAppDetailsMalformedBodyIsParseError(t *testing.T) {
	client := &mockHTTPClient{t: t, body: `<html>maintenance</html>`}

	_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 10, "")

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestGetAppDetailsRejectsNonPositiveID(t *testing.T) {
	client := &mockHTTPClient{t: t}

	for _, id := range []int{-1, 0} {
		_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), id, "")

		var invalid *InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Fatalf("id %d: expected InvalidArgumentError, got %v", id, err)
		}
	}
	if client.callCount() != 0 {
		t.Errorf("expected no network calls, got %d", client.callCount())
	}
}

func TestGetAppDetailsTransportFailure(t *testing.T) {
	wantErr := errors.New("connection refused")
	client := &mockHTTPClient{t: t, err: wantErr}

	_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 10, "")

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped transport cause")
	}
}

func TestGetAppDetailsNonOKStatus(t *testing.T) {
	client := &mockHTTPClient{t: t, status: 503, body: "upstream down"}

	_, err := New(WithHTTPClient(client)).GetAppDetails(context.Background(), 10, "")

	var transport *TransportError
	if !errors.As(err, &transport) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if transport.StatusCode != 503 {
		t.Errorf("StatusCode = %d", transport.StatusCode)
	}
}

func TestGetPackageDetailsBuildsURL(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/packagedetails?cc=JP&packageids=68179",
		body:      `{"68179": {"success": true, "data": {"name": "Saints Row IV", "apps": [{"id": 206420, "name": "Saints Row IV"}]}}}`,
	}

	pkg, err := New(WithHTTPClient(client)).GetPackageDetails(context.Background(), 68179, "JP")
	if err != nil {
		t.Fatalf("GetPackageDetails returned error: %v", err)
	}
	if pkg.ID != 68179 {
		t.Errorf("ID = %d", pkg.ID)
	}
	if pkg.Price != nil {
		t.Errorf("expected absent price to map to nil, got %+v", pkg.Price)
	}
	if ids := pkg.AppIDs(); len(ids) != 1 || ids[0] != 206420 {
		t.Errorf("AppIDs = %v", ids)
	}
}

func TestGetFeaturedCategoriesForwardsCountryVerbatim(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/featuredcategories?cc=US",
		body:      `{"specials": {"id": "cat_specials", "name": "Specials", "items": []}, "status": 1}`,
	}

	cats, err := New(WithHTTPClient(client)).GetFeaturedCategories(context.Background(), "US")
	if err != nil {
		t.Fatalf("GetFeaturedCategories returned error: %v", err)
	}
	if len(cats) != 1 || cats[0].ID != "cat_specials" {
		t.Fatalf("unexpected categories: %+v", cats)
	}
}

func TestGetFeaturedAppsOmitsCountry(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/featured",
		body:      `{"large_capsules": [{"id": 440, "name": "Team Fortress 2"}], "layout": "var", "status": 1}`,
	}

	featured, err := New(WithHTTPClient(client)).GetFeaturedApps(context.Background(), "")
	if err != nil {
		t.Fatalf("GetFeaturedApps returned error: %v", err)
	}
	if len(featured.LargeCapsules) != 1 || featured.LargeCapsules[0].ID != 440 {
		t.Fatalf("unexpected capsules: %+v", featured.LargeCapsules)
	}
}

// routingHTTPClient serves a distinct canned body per URL so concurrent calls
// can be told apart.
type routingHTTPClient struct {
	bodies map[string]string
}

func (r *routingHTTPClient) Get(ctx context.Context, url string, headers map[string]string) (httpclient.Response, error) {
	body, ok := r.bodies[url]
	if !ok {
		return nil, fmt.Errorf("unexpected url %q", url)
	}
	return mockResponse{body: []byte(body), statusCode: 200}, nil
}

func TestConcurrentAppDetailsCallsDoNotInterleave(t *testing.T) {
	client := &routingHTTPClient{bodies: map[string]string{
		"https://store.steampowered.com/api/appdetails?appids=460810": cs2Fixture,
		"https://store.steampowered.com/api/appdetails?appids=322330": `{"322330": {"success": true, "data": {"name": "Don't Starve Together", "type": "game"}}}`,
	}}
	c := New(WithHTTPClient(client))

	const rounds = 20
	var wg sync.WaitGroup
	errs := make(chan error, rounds*2)

	check := func(id int, wantName string) {
		defer wg.Done()
		app, err := c.GetAppDetails(context.Background(), id, "")
		if err != nil {
			errs <- err
			return
		}
		if app.Name != wantName {
			errs <- fmt.Errorf("id %d: got name %q, want %q", id, app.Name, wantName)
		}
	}

	for i := 0; i < rounds; i++ {
		wg.Add(2)
		go check(460810, "Counter-Strike 2")
		go check(322330, "Don't Starve Together")
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestCompatFunctionsUseTransientClient(t *testing.T) {
	client := &mockHTTPClient{
		t:         t,
		expectURL: "https://store.steampowered.com/api/appdetails?appids=460810&cc=DE",
		body:      cs2Fixture,
	}

	app, err := AppDetailsGet(context.Background(), 460810, "DE", WithHTTPClient(client))
	if err != nil {
		t.Fatalf("AppDetailsGet returned error: %v", err)
	}
	if app.Name != "Counter-Strike 2" {
		t.Errorf("Name = %q", app.Name)
	}

	if _, err := AppDetailsGet(context.Background(), -1, "", WithHTTPClient(client)); err == nil {
		t.Fatal("expected error for negative id")
	}
	if client.callCount() != 1 {
		t.Errorf("expected 1 request total, got %d", client.callCount())
	}
}
