// Package obstacles models a square memory region into which obstacles
// fall one at a time, each landing on an "x,y" coordinate (x = column,
// y = row). The walker starts at the top-left corner and exits at the
// bottom-right corner, moving in the four cardinal directions.
//
// The package answers two questions:
//
//   - MinSteps: the fewest moves to the exit once the first n obstacles
//     have landed.
//   - FirstBlocking: the first obstacle whose landing cuts every route.
//
// FirstBlocking binary-searches the prefix length with a BFS as the
// oracle; blocking is monotone in n, so O(log N) searches suffice.
package obstacles
