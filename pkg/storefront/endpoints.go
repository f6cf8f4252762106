package storefront

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the root of Steam's unofficial storefront API.
const DefaultBaseURL = "https://store.steampowered.com/api"

// Operation identifies a storefront endpoint.
type Operation string

const (
	OpAppDetails         Operation = "appdetails"
	OpPackageDetails     Operation = "packagedetails"
	OpFeatured           Operation = "featured"
	OpFeaturedCategories Operation = "featuredcategories"
)

// idParamName returns the query parameter carrying the entity id for the
// operation, or "" when the operation takes no id.
func idParamName(op Operation) string {
	switch op {
	case OpAppDetails:
		return "appids"
	case OpPackageDetails:
		return "packageids"
	default:
		return ""
	}
}

// buildRequestURL forms the full request target for an operation. The country
// code is forwarded verbatim when set and omitted entirely when empty; the
// upstream service applies its own default region in that case.
func buildRequestURL(baseURL string, op Operation, id int, country string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	target := base.JoinPath(string(op))

	q := target.Query()
	if param := idParamName(op); param != "" {
		q.Set(param, strconv.Itoa(id))
	}
	if country != "" {
		q.Set("cc", country)
	}
	target.RawQuery = q.Encode()

	return target.String(), nil
}
