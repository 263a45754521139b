package estimate

import "fmt"

// Sample is one (elapsed time, dps) observation. The dps value is the
// average rate from time 0 up to Time, so Damage() is the cumulative
// damage dealt by Time.
type Sample struct {
	Time float64 `json:"time"`
	DPS  float64 `json:"dps"`
}

func (s Sample) Damage() float64 { return s.Time * s.DPS }

// acc is the constant acceleration that takes s to up.
func (s Sample) acc(up Sample) float64 {
	return (up.DPS - s.DPS) / (up.Time - s.Time)
}

type Category string

const (
	Power Category = "power"
	Semi  Category = "semi"
	Condi Category = "condi"
)

// Categories lists every damage category in report column order.
func Categories() []Category { return []Category{Power, Semi, Condi} }

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case Power, Semi, Condi:
		return c, nil
	}
	return "", fmt.Errorf("unknown damage category %q", s)
}

// Profile is the single-player reference curve of one category.
// It is never mutated after construction.
type Profile struct {
	category Category
	samples  []Sample
}

func NewProfile(category Category, samples []Sample) *Profile {
	own := make([]Sample, len(samples))
	copy(own, samples)
	return &Profile{category: category, samples: own}
}

func (p *Profile) Category() Category { return p.category }
func (p *Profile) Len() int           { return len(p.samples) }
func (p *Profile) At(i int) Sample    { return p.samples[i] }

// Project scales every sample's dps by k into a fresh slice. Time is
// kept, so the squad's cumulative damage scales by k as well.
func Project(p *Profile, k float64) []Sample {
	out := make([]Sample, len(p.samples))
	for i, s := range p.samples {
		out[i] = Sample{Time: s.Time, DPS: s.DPS * k}
	}
	return out
}

// Library holds the reference profiles of a run. Build it once, then
// share it read-only between estimators.
type Library struct {
	profiles map[Category]*Profile
}

func NewLibrary(profiles ...*Profile) *Library {
	lib := &Library{profiles: make(map[Category]*Profile, len(profiles))}
	for _, p := range profiles {
		lib.profiles[p.category] = p
	}
	return lib
}

func (l *Library) Profile(c Category) (*Profile, bool) {
	p, ok := l.profiles[c]
	return p, ok
}
