// Package budget allocates a footprint's excess area across a room program,
// upsizing rooms from their requested catalogue option to the next size up
// in priority order until the excess is spent or no room can take more
// without exceeding it.
package budget
