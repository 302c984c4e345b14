package gamemath

import "math"

// StepToward moves (x, y) toward (targetX, targetY) by at most maxStep along the
// straight line between them. dist is the distance before the move.
func StepToward(x, y, targetX, targetY, maxStep float64) (nextX, nextY, dist float64) {
	dirX := targetX - x
	dirY := targetY - y
	dist = math.Hypot(dirX, dirY)
	if dist == 0 || maxStep <= 0 {
		return x, y, dist
	}
	if maxStep >= dist {
		return targetX, targetY, dist
	}
	return x + (dirX/dist)*maxStep, y + (dirY/dist)*maxStep, dist
}
