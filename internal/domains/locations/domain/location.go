package domain

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

var (
	ErrEmptyDistrict   = errors.New("district is required")
	ErrEmptyCity       = errors.New("city is required")
	ErrUnknownDistrict = errors.New("unknown district")
	ErrUnknownCity     = errors.New("city is not in the selected district")
)

// Directory answers lookups over the district table. Matching ignores case and surrounding space.
type Directory struct {
	districts []string
	byKey     map[string]string
	cities    map[string][]string
}

// NewDirectory indexes a district → cities table. A nil table selects the built-in one.
func NewDirectory(table map[string][]string) *Directory {
	if table == nil {
		table = districtCities
	}
	d := &Directory{
		byKey:  make(map[string]string, len(table)),
		cities: make(map[string][]string, len(table)),
	}
	for district, cities := range table {
		d.districts = append(d.districts, district)
		d.byKey[fold(district)] = district
		sorted := slices.Clone(cities)
		slices.Sort(sorted)
		d.cities[district] = sorted
	}
	slices.Sort(d.districts)
	return d
}

// Districts returns the district names in alphabetical order.
func (d *Directory) Districts() []string {
	return slices.Clone(d.districts)
}

// Cities returns the cities of a district in alphabetical order.
func (d *Directory) Cities(district string) ([]string, error) {
	name, err := d.resolve(district)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.cities[name]), nil
}

// Validate reports whether city belongs to district.
func (d *Directory) Validate(district, city string) error {
	name, err := d.resolve(district)
	if err != nil {
		return err
	}
	if strings.TrimSpace(city) == "" {
		return ErrEmptyCity
	}
	key := fold(city)
	if slices.ContainsFunc(d.cities[name], func(c string) bool { return fold(c) == key }) {
		return nil
	}
	return ErrUnknownCity
}

func (d *Directory) resolve(district string) (string, error) {
	if strings.TrimSpace(district) == "" {
		return "", ErrEmptyDistrict
	}
	name, ok := d.byKey[fold(district)]
	if !ok {
		return "", ErrUnknownDistrict
	}
	return name, nil
}

func fold(s string) string {
	return cases.Fold().String(strings.Join(strings.Fields(s), " "))
}
