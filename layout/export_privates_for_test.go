package layout

// Test bridge: expose the degeneracy check to layout_test without
// widening the production API.
var DegenerateForTest = degenerate
