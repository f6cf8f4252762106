package storefront

import "testing"

func TestBuildRequestURL(t *testing.T) {
	cases := []struct {
		name    string
		op      Operation
		id      int
		country string
		want    string
	}{
		{
			name: "app details without country",
			op:   OpAppDetails, id: 460810,
			want: "https://store.steampowered.com/api/appdetails?appids=460810",
		},
		{
			name: "app details with country",
			op:   OpAppDetails, id: 460810, country: "DE",
			want: "https://store.steampowered.com/api/appdetails?appids=460810&cc=DE",
		},
		{
			name: "package details",
			op:   OpPackageDetails, id: 68179, country: "JP",
			want: "https://store.steampowered.com/api/packagedetails?cc=JP&packageids=68179",
		},
		{
			name: "featured takes no id",
			op:   OpFeatured,
			want: "https://store.steampowered.com/api/featured",
		},
		{
			name: "featured categories with country",
			op:   OpFeaturedCategories, country: "US",
			want: "https://store.steampowered.com/api/featuredcategories?cc=US",
		},
		{
			name: "unknown country passed through verbatim",
			op:   OpFeaturedCategories, country: "ZZ",
			want: "https://store.steampowered.com/api/featuredcategories?cc=ZZ",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := buildRequestURL(DefaultBaseURL, tc.op, tc.id, tc.country)
			if err != nil {
				t.Fatalf("buildRequestURL: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBuildRequestURLRejectsBadBase(t *testing.T) {
	if _, err := buildRequestURL("://bad", OpFeatured, 0, ""); err == nil {
		t.Fatal("expected error for unparseable base url")
	}
}
