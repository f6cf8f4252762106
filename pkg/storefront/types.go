package storefront

import "fmt"

// Package storefront wraps Steam's unofficial storefront web API. The API is
// not officially documented; field sets were compiled from observed payloads.

// PriceInfo holds pricing for an app or package. Initial and Final are in the
// currency's minor units (cents). The *Formatted fields carry the display
// strings upstream sends verbatim; no local currency formatting is applied.
type PriceInfo struct {
	Currency         string `json:"currency"`
	Initial          int    `json:"initial"`
	Final            int    `json:"final"`
	DiscountPercent  int    `json:"discount_percent"`
	InitialFormatted string `json:"initial_formatted"`
	FinalFormatted   string `json:"final_formatted"`
}

// FormatInitial renders the initial price in major units (e.g. "19.99").
func (p PriceInfo) FormatInitial() string {
	return fmt.Sprintf("%.2f", float64(p.Initial)/100)
}

// FormatFinal renders the final price in major units.
func (p PriceInfo) FormatFinal() string {
	return fmt.Sprintf("%.2f", float64(p.Final)/100)
}

// Screenshot is a single store-page screenshot.
type Screenshot struct {
	ID            int    `json:"id"`
	PathThumbnail string `json:"path_thumbnail"`
	PathFull      string `json:"path_full"`
}

// Movie is a trailer or gameplay video, with per-quality source URLs.
type Movie struct {
	ID        int               `json:"id"`
	Name      string            `json:"name"`
	Thumbnail string            `json:"thumbnail"`
	WebM      map[string]string `json:"webm"`
	MP4       map[string]string `json:"mp4"`
	Highlight bool              `json:"highlight"`
}

// Category is a store category tag (e.g. single-player, co-op).
type Category struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

// Genre is a store genre tag. Upstream sends genre ids as strings.
type Genre struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// Platforms flags operating system availability.
type Platforms struct {
	Windows bool `json:"windows"`
	Mac     bool `json:"mac"`
	Linux   bool `json:"linux"`
}

// ReleaseDate carries the upstream release date as a display string.
type ReleaseDate struct {
	ComingSoon bool   `json:"coming_soon"`
	Date       string `json:"date"`
}

// SupportInfo holds publisher support contacts.
type SupportInfo struct {
	URL   string `json:"url"`
	Email string `json:"email"`
}

// ContentDescriptors lists mature-content descriptor ids and notes.
type ContentDescriptors struct {
	IDs   []int  `json:"ids"`
	Notes string `json:"notes"`
}

// PackageGroupSub is one purchase option inside a package group.
type PackageGroupSub struct {
	PackageID                int    `json:"packageid"`
	PercentSavingsText       string `json:"percent_savings_text"`
	PercentSavings           int    `json:"percent_savings"`
	OptionText               string `json:"option_text"`
	OptionDescription        string `json:"option_description"`
	CanGetFreeLicense        string `json:"can_get_free_license"`
	IsFreeLicense            bool   `json:"is_free_license"`
	PriceInCentsWithDiscount int    `json:"price_in_cents_with_discount"`
}

// PackageGroup groups the purchase options shown on a store page.
type PackageGroup struct {
	Name                    string            `json:"name"`
	Title                   string            `json:"title"`
	Description             string            `json:"description"`
	SelectionText           string            `json:"selection_text"`
	SaveText                string            `json:"save_text"`
	DisplayType             any               `json:"display_type"`
	IsRecurringSubscription string            `json:"is_recurring_subscription"`
	Subs                    []PackageGroupSub `json:"subs"`
}

// App is the full detail record for a Steam application. PriceOverview is nil
// for free apps and whenever upstream sends no price block; Screenshots,
// Movies and Packages are nil when the corresponding arrays are absent.
type App struct {
	SteamAppID          int                `json:"steam_appid"`
	Name                string             `json:"name"`
	Type                string             `json:"type"`
	IsFree              bool               `json:"is_free"`
	DetailedDescription string             `json:"detailed_description"`
	AboutTheGame        string             `json:"about_the_game"`
	ShortDescription    string             `json:"short_description"`
	SupportedLanguages  string             `json:"supported_languages"`
	HeaderImage         string             `json:"header_image"`
	Website             *string            `json:"website"`
	Developers          []string           `json:"developers"`
	Publishers          []string           `json:"publishers"`
	PriceOverview       *PriceInfo         `json:"price_overview"`
	Packages            []int              `json:"packages"`
	PackageGroups       []PackageGroup     `json:"package_groups"`
	Platforms           Platforms          `json:"platforms"`
	Categories          []Category         `json:"categories"`
	Genres              []Genre            `json:"genres"`
	Screenshots         []Screenshot       `json:"screenshots"`
	Movies              []Movie            `json:"movies"`
	ReleaseDate         ReleaseDate        `json:"release_date"`
	SupportInfo         SupportInfo        `json:"support_info"`
	Background          string             `json:"background"`
	ContentDescriptors  ContentDescriptors `json:"content_descriptors"`
}

// PackageApp references an application included in a package.
type PackageApp struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ControllerSupport flags controller compatibility for a package.
type ControllerSupport struct {
	FullGamepad bool `json:"full_gamepad"`
}

// Package is the detail record for a Steam package. ID is taken from the
// request, not the payload; upstream does not repeat it inside the data block.
// Price is nil when upstream sends no price block.
type Package struct {
	ID          int               `json:"-"`
	Name        string            `json:"name"`
	PageImage   string            `json:"page_image"`
	HeaderImage string            `json:"header_image"`
	SmallLogo   string            `json:"small_logo"`
	Apps        []PackageApp      `json:"apps"`
	Price       *PriceInfo        `json:"price"`
	Platforms   Platforms         `json:"platforms"`
	Controller  ControllerSupport `json:"controller"`
	ReleaseDate ReleaseDate       `json:"release_date"`
}

// AppIDs returns the ids of all applications included in the package.
func (p *Package) AppIDs() []int {
	if p == nil || len(p.Apps) == 0 {
		return nil
	}
	ids := make([]int, 0, len(p.Apps))
	for _, a := range p.Apps {
		ids = append(ids, a.ID)
	}
	return ids
}

// FeaturedApp is one promotional capsule entry. OriginalPrice is nil when the
// entry is not discounted or carries no price.
type FeaturedApp struct {
	ID                      int    `json:"id"`
	Type                    int    `json:"type"`
	Name                    string `json:"name"`
	Discounted              bool   `json:"discounted"`
	DiscountPercent         int    `json:"discount_percent"`
	OriginalPrice           *int   `json:"original_price"`
	FinalPrice              int    `json:"final_price"`
	Currency                string `json:"currency"`
	LargeCapsuleImage       string `json:"large_capsule_image"`
	SmallCapsuleImage       string `json:"small_capsule_image"`
	WindowsAvailable        bool   `json:"windows_available"`
	MacAvailable            bool   `json:"mac_available"`
	LinuxAvailable          bool   `json:"linux_available"`
	StreamingVideoAvailable bool   `json:"streamingvideo_available"`
	HeaderImage             string `json:"header_image"`
	ControllerSupport       string `json:"controller_support"`
}

// FeaturedApps is the storefront front-page listing, grouped by capsule size
// and platform.
type FeaturedApps struct {
	LargeCapsules []FeaturedApp `json:"large_capsules"`
	FeaturedWin   []FeaturedApp `json:"featured_win"`
	FeaturedMac   []FeaturedApp `json:"featured_mac"`
	FeaturedLinux []FeaturedApp `json:"featured_linux"`
	Layout        string        `json:"layout"`
	Status        int           `json:"status"`
}

// FeaturedCategory is a named front-page grouping (specials, top sellers, ...)
// with its ordered capsule entries.
type FeaturedCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []FeaturedApp `json:"items"`
}
