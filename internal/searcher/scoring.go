package searcher

// Base scores per rule category
const (
	ScoreEmergency = 1000.0
	ScoreBooking   = 500.0
	ScoreInsurance = 450.0
	ScoreLocation  = 400.0

	// Body-part matches: up to BodyPartConditionLimit real conditions at
	// ScoreBodyPartCondition - BodyPartRankStep*rank, then one generic record.
	ScoreBodyPartCondition = 350.0
	BodyPartRankStep       = 10.0
	BodyPartConditionLimit = 3
	ScoreBodyPartGeneric   = 280.0

	// Activity matches: the overview, then each related condition at
	// ScoreActivityCondition - ActivityRankStep*rank.
	ScoreActivityOverview  = 320.0
	ScoreActivityCondition = 300.0
	ActivityRankStep       = 5.0

	ScoreTreatment = 250.0

	// Symptom mappings need at least this match confidence
	SymptomMinConfidence = 70.0

	// The fallback runs only when fewer than FallbackBelow candidates were
	// produced, and keeps conditions whose confidence exceeds
	// FallbackMinConfidence, scored confidence + FallbackBonus.
	FallbackBelow         = 3
	FallbackMinConfidence = 50.0
	FallbackBonus         = 100.0

	// MaxResults caps every result list
	MaxResults = 8
)
