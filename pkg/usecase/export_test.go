package usecase

// BuildGeneratePrompt is exported for testing
var BuildGeneratePrompt = buildGeneratePrompt

// BuildDraftPrompt is exported for testing
var BuildDraftPrompt = buildDraftPrompt

// BuildIntentPrompt is exported for testing
var BuildIntentPrompt = buildIntentPrompt

// ParseIntentResponse is exported for testing
var ParseIntentResponse = parseIntentResponse

// Exported for testing the temperature and retrieval parameters
const (
	MatchCount          = matchCount
	MatchThreshold      = matchThreshold
	TemperatureClassify = temperatureClassify
	TemperatureGenerate = temperatureGenerate
	TemperatureDraft    = temperatureDraft
)
