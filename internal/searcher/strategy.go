package searcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/catalog"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/internal/matcher"
	"github.com/GenerousPharaoh/kinetikare-physio-landing-page-sub000/pkg/types"
)

// Input is what a strategy sees when it runs
type Input struct {
	Query    string // Raw query as typed
	Catalog  *catalog.Catalog
	Produced int // Candidates produced by earlier strategies
}

// Strategy is one independent scoring rule category
type Strategy interface {
	Name() types.Source
	Candidates(in Input) []types.SearchCandidate
}

// DefaultStrategies returns the rule categories in priority order
func DefaultStrategies() []Strategy {
	return []Strategy{
		intentStrategy{source: types.SourceEmergency, score: ScoreEmergency, pick: func(i catalog.Intents) catalog.Intent { return i.Emergency }},
		intentStrategy{source: types.SourceBooking, score: ScoreBooking, pick: func(i catalog.Intents) catalog.Intent { return i.Booking }},
		symptomStrategy{},
		bodyPartStrategy{},
		activityStrategy{},
		treatmentStrategy{},
		intentStrategy{source: types.SourceInsurance, score: ScoreInsurance, pick: func(i catalog.Intents) catalog.Intent { return i.Insurance }},
		intentStrategy{source: types.SourceLocation, score: ScoreLocation, pick: func(i catalog.Intents) catalog.Intent { return i.Location }},
		fallbackStrategy{},
	}
}

// intentStrategy emits a single canned record when the query contains any keyword
type intentStrategy struct {
	source types.Source
	score  float64
	pick   func(catalog.Intents) catalog.Intent
}

func (s intentStrategy) Name() types.Source { return s.source }

func (s intentStrategy) Candidates(in Input) []types.SearchCandidate {
	intent := s.pick(in.Catalog.Intents)
	if !matcher.ContainsAny(in.Query, intent.Keywords) {
		return nil
	}
	return []types.SearchCandidate{{
		Title:       intent.Title,
		Description: intent.Description,
		URL:         intent.URL,
		Category:    intent.Category,
		Kind:        intent.Kind,
		Source:      s.source,
		Score:       s.score,
	}}
}

// symptomStrategy emits one record per symptom mapping the query matches
type symptomStrategy struct{}

func (symptomStrategy) Name() types.Source { return types.SourceSymptom }

func (symptomStrategy) Candidates(in Input) []types.SearchCandidate {
	var out []types.SearchCandidate
	for _, m := range in.Catalog.Symptoms {
		best := 0.0
		for _, phrase := range m.Symptoms {
			best = max(best, matcher.Confidence(phrase, in.Query))
		}
		if best < SymptomMinConfidence {
			continue
		}

		c := types.SearchCandidate{
			Title:       m.Title,
			Description: joinSentences(m.Advice, m.Action),
			URL:         m.URL,
			Category:    "Symptom Check",
			Kind:        types.KindCondition,
			Source:      types.SourceSymptom,
			Score:       m.Urgency.BaseScore(),
		}
		if cond, ok := in.Catalog.ConditionBySlug(m.Condition); ok {
			c.Category = cond.Category
			if c.URL == "" {
				c.URL = cond.URL()
			}
		}
		out = append(out, c)
	}
	return out
}

// bodyPartStrategy cross-references a mentioned body part against real conditions
type bodyPartStrategy struct{}

func (bodyPartStrategy) Name() types.Source { return types.SourceBodyPart }

func (bodyPartStrategy) Candidates(in Input) []types.SearchCandidate {
	var out []types.SearchCandidate
	for _, part := range in.Catalog.BodyParts {
		if !matcher.ContainsAnyWord(in.Query, part.Terms()) {
			continue
		}

		conds := in.Catalog.ConditionsMatching(part.Conditions)
		if len(conds) > BodyPartConditionLimit {
			conds = conds[:BodyPartConditionLimit]
		}
		for rank, cond := range conds {
			out = append(out, conditionCandidate(cond, types.SourceBodyPart, ScoreBodyPartCondition-BodyPartRankStep*float64(rank)))
		}

		name := cases.Title(language.English).String(part.Name)
		out = append(out, types.SearchCandidate{
			Title:       name + " Treatment",
			Description: "Assessment and treatment for " + strings.ToLower(part.Name) + " pain and injuries.",
			URL:         "/treatments?area=" + strings.ReplaceAll(strings.ToLower(part.Name), " ", "-"),
			Category:    "Treatment",
			Kind:        types.KindService,
			Source:      types.SourceBodyPart,
			Score:       ScoreBodyPartGeneric,
		})
	}
	return out
}

// activityStrategy emits the activity guide and the conditions it commonly causes
type activityStrategy struct{}

func (activityStrategy) Name() types.Source { return types.SourceActivity }

func (activityStrategy) Candidates(in Input) []types.SearchCandidate {
	var out []types.SearchCandidate
	for _, a := range in.Catalog.Activities {
		if !matcher.ContainsAnyWord(in.Query, a.Keywords) {
			continue
		}

		out = append(out, types.SearchCandidate{
			Title:       a.Name + " Injuries",
			Description: a.Advice,
			URL:         a.URL(),
			Category:    "Activity",
			Kind:        types.KindPage,
			Source:      types.SourceActivity,
			Score:       ScoreActivityOverview,
		})
		for rank, cond := range in.Catalog.ConditionsMatching(a.Conditions) {
			out = append(out, conditionCandidate(cond, types.SourceActivity, ScoreActivityCondition-ActivityRankStep*float64(rank)))
		}
	}
	return out
}

type treatmentStrategy struct{}

func (treatmentStrategy) Name() types.Source { return types.SourceTreatment }

func (treatmentStrategy) Candidates(in Input) []types.SearchCandidate {
	var out []types.SearchCandidate
	for _, t := range in.Catalog.Treatments {
		if !matcher.ContainsAny(in.Query, t.Keywords) {
			continue
		}
		out = append(out, types.SearchCandidate{
			Title:       t.Name,
			Description: t.Description,
			URL:         t.URL(),
			Category:    "Treatment",
			Kind:        types.KindService,
			Source:      types.SourceTreatment,
			Score:       ScoreTreatment,
		})
	}
	return out
}

// fallbackStrategy fuzzy-matches condition names when the rules above under-produced
type fallbackStrategy struct{}

func (fallbackStrategy) Name() types.Source { return types.SourceFallback }

func (fallbackStrategy) Candidates(in Input) []types.SearchCandidate {
	if in.Produced >= FallbackBelow {
		return nil
	}

	var out []types.SearchCandidate
	for _, cond := range in.Catalog.Conditions {
		conf := matcher.Confidence(cond.Name, in.Query)
		if conf <= FallbackMinConfidence {
			continue
		}
		out = append(out, conditionCandidate(cond, types.SourceFallback, conf+FallbackBonus))
	}
	return out
}

func conditionCandidate(cond catalog.Condition, source types.Source, score float64) types.SearchCandidate {
	return types.SearchCandidate{
		Title:       cond.Name,
		Description: cond.Summary,
		URL:         cond.URL(),
		Category:    cond.Category,
		Kind:        types.KindCondition,
		Source:      source,
		Score:       score,
	}
}

func joinSentences(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " ")
}
