// Package utils provides small conversion helpers shared by the HTTP handlers and the CLI.
package utils
