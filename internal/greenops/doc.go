// Package greenops turns a carbon total into relatable comparisons such as
// miles driven or tree seedlings grown, and formats the numbers for display.
package greenops
