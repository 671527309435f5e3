package game

// linePoints is the base award per number of rows cleared by one lock.
var linePoints = [...]int{0, 100, 300, 500, 800}

// LinePoints returns the points for clearing n rows in one lock at level.
// Counts outside 1..4 score nothing.
func LinePoints(n, level int) int {
	if n <= 0 || n >= len(linePoints) {
		return 0
	}
	return linePoints[n] * level
}

// LevelFor returns the level reached after clearing lines in total.
func LevelFor(lines, linesPerLevel int) int {
	return lines/linesPerLevel + 1
}
