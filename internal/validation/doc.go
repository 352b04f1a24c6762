// Package validation holds the struct validator shared by order and
// configuration checks.
package validation
