// Package ui holds the host widgets that sit around the game container.
package ui

import "fmt"

// Counter counts clicks. The zero value is ready to use.
type Counter struct {
	count int
}

// Click increments the count and returns the new value.
func (c *Counter) Click() int {
	c.count++
	return c.count
}

func (c *Counter) Count() int {
	return c.count
}

func (c *Counter) Label() string {
	return CounterLabel(c.count)
}

// CounterLabel renders a count the way the widget shows it.
func CounterLabel(n int) string {
	return fmt.Sprintf("You clicked %d times", n)
}
