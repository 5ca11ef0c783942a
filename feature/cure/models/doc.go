// Package models defines the persisted shapes of the cure feature.
package models
