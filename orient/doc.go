// Package orient defines the unit of the oriented search: a grid position
// paired with a facing direction, and the transitions between such states.
//
// From any State at most three transitions exist:
//
//	Straight   same direction, one cell ahead, cost Move; only into an Open cell
//	TurnLeft   same cell, direction rotated 90° counter-clockwise, cost Turn
//	TurnRight  same cell, direction rotated 90° clockwise, cost Turn
//
// A reversal is never generated directly; it is reached by two turns and so
// costs 2×Turn. Because a turn does not move, it never collides with a wall.
//
// States map to dense indices in [0, rows×cols×4) for table storage.
package orient
