// Package models defines the persisted country entities and query types.
package models
