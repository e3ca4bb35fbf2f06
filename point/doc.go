/*
Package point provides a 2D integer co-ordinate and the handful of grid
operations built on it: rotation about the origin, adjacency, direction
indexing, distance, flat index conversion and Bresenham line plotting.

Co-ordinates follow a single convention throughout. The four unit points are

	South (0, -1)  Dir 0
	West  (-1, 0)  Dir 1
	North (0, 1)   Dir 2
	East  (1, 0)   Dir 3

and rotating East clockwise gives South, then West, then North. AllAdjacent
returns neighbours in that same order.

Arithmetic is plain int32 arithmetic; overflow wraps and Div by zero panics.
*/
package point
