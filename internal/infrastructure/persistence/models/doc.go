// Package models contains GORM database models for the infrastructure layer.
// These models handle database persistence and are separated from domain entities;
// big integers are stored as 0x-prefixed hexadecimal strings.
package models
