package render

// Test bridge: expose the width heuristic's stages to render_test without
// widening the production API.
var (
	NormalizedBetweennessForTest = normalizedBetweenness
	BetweennessWidthsForTest     = betweennessWidths
)
