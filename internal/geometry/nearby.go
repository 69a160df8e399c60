package geometry

import (
	"fmt"
	"hash/fnv"
	"math"

	"pgmanager/server/internal/models"
)

const (
	NearbyAll           = "all"
	NearbyColleges      = "colleges"
	NearbyCompanies     = "companies"
	NearbyTransport     = "transport"
	NearbyEntertainment = "entertainment"
)

// NearbyCategory is one tab of the nearby-places panel
type NearbyCategory struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

var NearbyCategories = []NearbyCategory{
	{ID: NearbyAll, Label: "All", Icon: "🏢"},
	{ID: NearbyColleges, Label: "Colleges", Icon: "🎓"},
	{ID: NearbyCompanies, Label: "Companies", Icon: "🏢"},
	{ID: NearbyTransport, Label: "Transport", Icon: "🚇"},
	{ID: NearbyEntertainment, Label: "Entertainment", Icon: "🎬"},
}

type NearbyPlace struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	DistanceKm float64 `json:"distance_km"`
	Distance   string  `json:"distance"`
	Icon       string  `json:"icon"`
}

// placeKind describes how one grouping is labelled and how far away its
// places may be, in km.
type placeKind struct {
	category string
	typ      string
	icon     string
	min      float64
	span     float64
}

var (
	collegeKind       = placeKind{NearbyColleges, "college", "🎓", 0.5, 5}
	companyKind       = placeKind{NearbyCompanies, "company", "🏢", 1, 10}
	transportKind     = placeKind{NearbyTransport, "transport", "🚇", 0.2, 2}
	entertainmentKind = placeKind{NearbyEntertainment, "entertainment", "🎬", 1, 8}
)

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// placeDistance derives a stable distance from the property, grouping and
// place name, so the same place always reports the same figure.
func placeDistance(propertyID string, kind placeKind, name string) float64 {
	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", propertyID, kind.category, name)
	frac := float64(h.Sum32()) / float64(math.MaxUint32)
	return roundTenth(kind.min + frac*kind.span)
}

func places(propertyID string, kind placeKind, names []string) []NearbyPlace {
	out := make([]NearbyPlace, 0, len(names))
	for i, name := range names {
		km := placeDistance(propertyID, kind, name)
		out = append(out, NearbyPlace{
			ID:         fmt.Sprintf("%s-%d", kind.typ, i),
			Name:       name,
			Type:       kind.typ,
			DistanceKm: km,
			Distance:   fmt.Sprintf("%.1f km", km),
			Icon:       kind.icon,
		})
	}
	return out
}

func firstN(names []string, n int) []string {
	if len(names) < n {
		return names
	}
	return names[:n]
}

// NearbyPlaces lists the landmarks of one grouping. "all" and any
// unrecognised category give the first two colleges and first two
// companies.
func NearbyPlaces(p models.Property, category string) []NearbyPlace {
	switch category {
	case NearbyColleges:
		return places(p.ID, collegeKind, p.NearbyPlaces.Colleges)
	case NearbyCompanies:
		return places(p.ID, companyKind, p.NearbyPlaces.Companies)
	case NearbyTransport:
		return places(p.ID, transportKind, p.NearbyPlaces.Transport)
	case NearbyEntertainment:
		return places(p.ID, entertainmentKind, p.NearbyPlaces.Entertainment)
	default:
		out := places(p.ID, collegeKind, firstN(p.NearbyPlaces.Colleges, 2))
		return append(out, places(p.ID, companyKind, firstN(p.NearbyPlaces.Companies, 2))...)
	}
}
