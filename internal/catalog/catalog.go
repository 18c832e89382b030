package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// Common errors
var (
	ErrInvalidCatalog   = errors.New("invalid catalog")
	ErrUnknownUrgency   = errors.New("unknown urgency")
	ErrDuplicateSlug    = errors.New("duplicate condition slug")
	ErrUnknownCondition = errors.New("unknown condition")
)

// Urgency is the static severity tag of a symptom mapping
type Urgency string

const (
	UrgencyEmergency Urgency = "emergency"
	UrgencyHigh      Urgency = "high"
	UrgencyModerate  Urgency = "moderate"
	UrgencyLow       Urgency = "low"
)

// BaseScore returns the score a matching symptom mapping of this urgency gets
func (u Urgency) BaseScore() float64 {
	switch u {
	case UrgencyEmergency:
		return 800
	case UrgencyHigh:
		return 400
	case UrgencyModerate:
		return 300
	case UrgencyLow:
		return 200
	default:
		return 0
	}
}

// Valid reports whether u is a known urgency
func (u Urgency) Valid() bool {
	return u.BaseScore() > 0
}

// Practice holds the clinic's contact and booking destinations
type Practice struct {
	Name       string `yaml:"name"`
	Phone      string `yaml:"phone"`
	BookingURL string `yaml:"booking_url"`
	Address    string `yaml:"address"`
	Hours      string `yaml:"hours"`
}

// PhoneURL returns the tel: URI for the clinic phone
func (p Practice) PhoneURL() string {
	return "tel:" + p.Phone
}

// Condition is a published condition page
type Condition struct {
	Name     string `yaml:"name"`
	Slug     string `yaml:"slug"`
	Category string `yaml:"category"`
	Summary  string `yaml:"summary"`
}

// URL returns the internal route of the condition page
func (c Condition) URL() string {
	return "/conditions/" + c.Slug
}

// SymptomMapping maps symptom phrases to a condition with a static urgency
type SymptomMapping struct {
	Title     string   `yaml:"title"`
	Symptoms  []string `yaml:"symptoms"`
	Condition string   `yaml:"condition"` // Condition slug, optional
	URL       string   `yaml:"url"`       // Overrides the condition page, optional
	Urgency   Urgency  `yaml:"urgency"`
	Advice    string   `yaml:"advice"`
	Action    string   `yaml:"action"`
}

// BodyPart maps a body part and its aliases to condition names
type BodyPart struct {
	Name       string   `yaml:"name"`
	Aliases    []string `yaml:"aliases"`
	Conditions []string `yaml:"conditions"`
}

// Terms returns the name followed by the aliases
func (b BodyPart) Terms() []string {
	return append([]string{b.Name}, b.Aliases...)
}

// Activity maps an activity's keywords to the conditions it commonly causes
type Activity struct {
	Name       string   `yaml:"name"`
	Slug       string   `yaml:"slug"`
	Keywords   []string `yaml:"keywords"`
	Conditions []string `yaml:"conditions"`
	Advice     string   `yaml:"advice"`
}

// URL returns the internal route of the activity guide
func (a Activity) URL() string {
	return "/activities/" + a.Slug
}

// Treatment is a treatment modality offered at the clinic
type Treatment struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Keywords    []string `yaml:"keywords"`
	Description string   `yaml:"description"`
}

// URL returns the internal route of the treatment page
func (t Treatment) URL() string {
	return "/treatments/" + t.Slug
}

// Intent is a canned destination triggered by keywords
type Intent struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	URL         string     `yaml:"url"`
	Category    string     `yaml:"category"`
	Kind        types.Kind `yaml:"kind"`
	Keywords    []string   `yaml:"keywords"`
}

// Intents groups the canned intents
type Intents struct {
	Emergency Intent `yaml:"emergency"`
	Booking   Intent `yaml:"booking"`
	Insurance Intent `yaml:"insurance"`
	Location  Intent `yaml:"location"`
}

// Catalog is the read-only record store the engine searches.
// It is never mutated after Load returns.
type Catalog struct {
	Practice   Practice
	Conditions []Condition
	Symptoms   []SymptomMapping
	BodyParts  []BodyPart
	Activities []Activity
	Treatments []Treatment
	Intents    Intents

	bySlug map[string]int
}

// ConditionBySlug looks up a condition by slug
func (c *Catalog) ConditionBySlug(slug string) (Condition, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Condition{}, false
	}
	return c.Conditions[i], true
}

// ConditionsMatching returns the real conditions whose names overlap any of
// the given names, in the order of names, each condition at most once.
// Names overlap when either contains the other, ignoring case.
func (c *Catalog) ConditionsMatching(names []string) []Condition {
	var out []Condition
	seen := make(map[string]bool)

	for _, name := range names {
		want := strings.ToLower(strings.TrimSpace(name))
		if want == "" {
			continue
		}
		for _, cond := range c.Conditions {
			if seen[cond.Slug] {
				continue
			}
			have := strings.ToLower(cond.Name)
			if strings.Contains(have, want) || strings.Contains(want, have) {
				out = append(out, cond)
				seen[cond.Slug] = true
			}
		}
	}
	return out
}

// Validate checks the catalog for missing fields and dangling references
func (c *Catalog) Validate() error {
	if c.Practice.Phone == "" || c.Practice.BookingURL == "" {
		return fmt.Errorf("%w: practice phone and booking_url are required", ErrInvalidCatalog)
	}

	slugs := make(map[string]bool, len(c.Conditions))
	for i, cond := range c.Conditions {
		if cond.Name == "" || cond.Slug == "" {
			return fmt.Errorf("%w: condition %d needs a name and slug", ErrInvalidCatalog, i)
		}
		if slugs[cond.Slug] {
			return fmt.Errorf("%w: %s", ErrDuplicateSlug, cond.Slug)
		}
		slugs[cond.Slug] = true
	}

	for _, s := range c.Symptoms {
		if s.Title == "" || len(s.Symptoms) == 0 {
			return fmt.Errorf("%w: symptom mapping %q needs a title and symptoms", ErrInvalidCatalog, s.Title)
		}
		if !s.Urgency.Valid() {
			return fmt.Errorf("%w: %q on %q", ErrUnknownUrgency, s.Urgency, s.Title)
		}
		if s.Condition != "" && !slugs[s.Condition] {
			return fmt.Errorf("%w: %q referenced by %q", ErrUnknownCondition, s.Condition, s.Title)
		}
		if s.Condition == "" && s.URL == "" {
			return fmt.Errorf("%w: symptom mapping %q needs a condition or url", ErrInvalidCatalog, s.Title)
		}
	}

	for _, b := range c.BodyParts {
		if b.Name == "" {
			return fmt.Errorf("%w: body part without a name", ErrInvalidCatalog)
		}
	}
	for _, a := range c.Activities {
		if a.Name == "" || a.Slug == "" || len(a.Keywords) == 0 {
			return fmt.Errorf("%w: activity %q needs a name, slug and keywords", ErrInvalidCatalog, a.Name)
		}
	}
	for _, t := range c.Treatments {
		if t.Name == "" || t.Slug == "" || len(t.Keywords) == 0 {
			return fmt.Errorf("%w: treatment %q needs a name, slug and keywords", ErrInvalidCatalog, t.Name)
		}
	}

	for name, in := range c.intentsByName() {
		if in.Title == "" || in.URL == "" {
			return fmt.Errorf("%w: %s intent needs a title and url", ErrInvalidCatalog, name)
		}
		if !in.Kind.Valid() {
			return fmt.Errorf("%w: %s intent has kind %q", ErrInvalidCatalog, name, in.Kind)
		}
	}

	return nil
}

func (c *Catalog) intentsByName() map[string]Intent {
	return map[string]Intent{
		"emergency": c.Intents.Emergency,
		"booking":   c.Intents.Booking,
		"insurance": c.Intents.Insurance,
		"location":  c.Intents.Location,
	}
}

// finish fills derived fields once all datasets are decoded
func (c *Catalog) finish() {
	if c.Intents.Emergency.URL == "" {
		c.Intents.Emergency.URL = c.Practice.PhoneURL()
	}
	if c.Intents.Booking.URL == "" {
		c.Intents.Booking.URL = c.Practice.BookingURL
	}

	c.bySlug = make(map[string]int, len(c.Conditions))
	for i, cond := range c.Conditions {
		if _, dup := c.bySlug[cond.Slug]; !dup {
			c.bySlug[cond.Slug] = i
		}
	}
}
