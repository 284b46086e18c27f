// Package schema defines the reconciled metadata model of an NYC-DB
// database: datasets group tables, tables hold ordered columns, and every
// column carries a data type drawn from a closed set of catalog types.
package schema

import (
	"slices"

	"github.com/toolness/nycdb-fun/pkg/errors"
)

// DataType is a column type as reported by the information_schema catalog.
type DataType string

// Recognized catalog types. Values match information_schema.columns.data_type exactly.
const (
	TypeArray     DataType = "ARRAY"
	TypeCharacter DataType = "character"
	TypeText      DataType = "text"
	TypeInteger   DataType = "integer"
	TypeBigint    DataType = "bigint"
	TypeSmallint  DataType = "smallint"
	TypeDate      DataType = "date"
	TypeBoolean   DataType = "boolean"
	TypeNumeric   DataType = "numeric"
	TypeJSON      DataType = "json"
	TypeTime      DataType = "time without time zone"
)

// DataTypes returns every recognized type in declaration order.
func DataTypes() []DataType {
	return []DataType{
		TypeArray,
		TypeCharacter,
		TypeText,
		TypeInteger,
		TypeBigint,
		TypeSmallint,
		TypeDate,
		TypeBoolean,
		TypeNumeric,
		TypeJSON,
		TypeTime,
	}
}

// ParseDataType classifies a catalog type string. Matching is exact; an
// unrecognized type is a validation error.
func ParseDataType(s string) (DataType, error) {
	t := DataType(s)
	if !t.IsValid() {
		return "", errors.NewValidationError("data_type", s, "unrecognized catalog type "+s)
	}
	return t, nil
}

// IsValid reports whether t is one of the recognized types.
func (t DataType) IsValid() bool {
	return slices.Contains(DataTypes(), t)
}

// IsArray reports whether t is the array type.
func (t DataType) IsArray() bool {
	return t == TypeArray
}

// String returns the catalog spelling of t.
func (t DataType) String() string {
	return string(t)
}

// Display returns the human readable name of t used in documentation.
func (t DataType) Display() string {
	if t == TypeArray {
		return "array"
	}
	return string(t)
}
