package reasoning

// Log prefixes
const (
	LogPrefixGenerate = "internal.reasoning.Generate"
)

const (
	DefaultMaxAttempts = 2
	DefaultTemperature = 0.2

	tracerName = "travel-assistant/internal/reasoning"
)

const (
	promptSchemaSuffix = `

Respond with a single JSON object and nothing else. It must conform to this JSON Schema:
%s`

	promptRepair = `Your previous reply was rejected: %s
Reply again with a corrected JSON object only.`
)
