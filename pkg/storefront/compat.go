package storefront

import "context"

// Compatibility layer mirroring the legacy static-call convention
// (AppDetails.Get, PackageDetails.Get, Featured.Get, FeaturedCategories.Get).
// Each call builds a transient Client, so connections are not reused across
// calls; use a shared Client when that matters.

// AppDetailsGet fetches app details with a throwaway client.
func AppDetailsGet(ctx context.Context, appID int, country string, opts ...Option) (*App, error) {
	return New(opts...).GetAppDetails(ctx, appID, country)
}

// PackageDetailsGet fetches package details with a throwaway client.
func PackageDetailsGet(ctx context.Context, packageID int, country string, opts ...Option) (*Package, error) {
	return New(opts...).GetPackageDetails(ctx, packageID, country)
}

// FeaturedGet fetches the featured front page with a throwaway client.
func FeaturedGet(ctx context.Context, country string, opts ...Option) (*FeaturedApps, error) {
	return New(opts...).GetFeaturedApps(ctx, country)
}

// FeaturedCategoriesGet fetches featured categories with a throwaway client.
func FeaturedCategoriesGet(ctx context.Context, country string, opts ...Option) ([]FeaturedCategory, error) {
	return New(opts...).GetFeaturedCategories(ctx, country)
}
