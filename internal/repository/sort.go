package repository

import (
	"errors"
	"strings"
)

var (
	ErrInvalidSortKey   = errors.New("Invalid sort key")
	ErrInvalidSortOrder = errors.New("Invalid sort order")
)

// orderClause resolves a caller-supplied sort key and direction against a
// fixed column allow-list. Raw input never reaches the ORDER BY clause.
func orderClause(columns map[string]string, sortBy, sortOrder, defaultColumn string) (string, error) {
	column := defaultColumn
	if sortBy != "" {
		mapped, ok := columns[strings.ToLower(sortBy)]
		if !ok {
			return "", ErrInvalidSortKey
		}
		column = mapped
	}

	direction := "ASC"
	if sortOrder != "" {
		switch strings.ToUpper(sortOrder) {
		case "ASC":
			direction = "ASC"
		case "DESC":
			direction = "DESC"
		default:
			return "", ErrInvalidSortOrder
		}
	}

	return column + " " + direction, nil
}

// substring converts a filter value into a case-insensitive LIKE pattern.
func substring(value string) string {
	return "%" + strings.ToLower(value) + "%"
}
