// Package models contains GORM database models for infrastructure layer.
// Key metadata and key material live in separate tables so listings never load PEM bytes.
package models
