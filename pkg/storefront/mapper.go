package storefront

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// detailsEnvelope is the per-id wrapper around appdetails/packagedetails
// payloads: {"<id>": {"success": bool, "data": {...}}}.
type detailsEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// unwrapDetails extracts the data block for the requested id. A missing
// envelope, success=false, an absent success flag, or an empty data block all
// mean the entity does not exist upstream.
func unwrapDetails(body []byte, op Operation, kind string, id int) (json.RawMessage, error) {
	var envelopes map[string]detailsEnvelope
	if err := json.Unmarshal(body, &envelopes); err != nil {
		return nil, &ParseError{Operation: op, Err: err}
	}

	env, ok := envelopes[strconv.Itoa(id)]
	if !ok || !env.Success || len(env.Data) == 0 {
		return nil, &NotFoundError{Kind: kind, ID: id}
	}
	return env.Data, nil
}

// decodeAppDetails maps an appdetails payload to an App.
func decodeAppDetails(body []byte, appID int) (*App, error) {
	data, err := unwrapDetails(body, OpAppDetails, "app", appID)
	if err != nil {
		return nil, err
	}

	var app App
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, &ParseError{Operation: OpAppDetails, Err: err}
	}
	if strings.TrimSpace(app.Name) == "" {
		return nil, &ParseError{Operation: OpAppDetails, Err: errors.New("data block is missing required field name")}
	}
	if app.SteamAppID == 0 {
		app.SteamAppID = appID
	}
	return &app, nil
}

// decodePackageDetails maps a packagedetails payload to a Package.
func decodePackageDetails(body []byte, packageID int) (*Package, error) {
	data, err := unwrapDetails(body, OpPackageDetails, "package", packageID)
	if err != nil {
		return nil, err
	}

	var pkg Package
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, &ParseError{Operation: OpPackageDetails, Err: err}
	}
	if strings.TrimSpace(pkg.Name) == "" {
		return nil, &ParseError{Operation: OpPackageDetails, Err: errors.New("data block is missing required field name")}
	}
	pkg.ID = packageID
	return &pkg, nil
}

// decodeFeatured maps the featured front-page payload.
func decodeFeatured(body []byte) (*FeaturedApps, error) {
	var featured FeaturedApps
	if err := json.Unmarshal(body, &featured); err != nil {
		return nil, &ParseError{Operation: OpFeatured, Err: err}
	}
	return &featured, nil
}

// decodeFeaturedCategories maps the featuredcategories payload. The response
// is a single object whose object-valued members are categories; scalar
// members (such as the status code) are skipped. Members are returned in
// sorted key order since JSON objects carry no ordering.
func decodeFeaturedCategories(body []byte) ([]FeaturedCategory, error) {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, &ParseError{Operation: OpFeaturedCategories, Err: err}
	}

	keys := make([]string, 0, len(members))
	for key := range members {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	categories := make([]FeaturedCategory, 0, len(members))
	for _, key := range keys {
		raw := members[key]
		if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
			continue
		}
		var cat FeaturedCategory
		if err := json.Unmarshal(raw, &cat); err != nil {
			return nil, &ParseError{Operation: OpFeaturedCategories, Err: err}
		}
		if cat.ID == "" && cat.Name == "" {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, nil
}
