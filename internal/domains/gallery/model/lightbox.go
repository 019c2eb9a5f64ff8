package model

import "fmt"

// Step moves index by step over n items and wraps at both ends.
func Step(index, step, n int) int {
	if n <= 0 {
		return 0
	}

	return ((index+step)%n + n) % n
}

// Counter renders the "3 / 12" position shown under the lightbox image.
func Counter(index, n int) string {
	return fmt.Sprintf("%d / %d", index+1, n)
}
