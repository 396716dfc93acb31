package sqlerr

import "net/http"

// Code is the enumerated database error code carried by a DatabaseError.
//
// Codes outside the known set are still valid values: they are what an
// unrecognized driver error (e.g. a raw SQLSTATE) ends up as, and they take
// the "unknown database error" path of the translator.
type Code string

const (
	InitializationFailed        Code = "P2000"
	NotConnected                Code = "P2001"
	AuthenticationFailed        Code = "P2002"
	ConnectionFailed            Code = "P2003"
	QueryFailed                 Code = "P2004"
	TransactionFailed           Code = "P2005"
	RecordNotFound              Code = "P2006"
	InvalidInputValue           Code = "P2007"
	PermissionDenied            Code = "P2008"
	AuthenticationRequired      Code = "P2009"
	ForeignKeyViolation         Code = "P2010"
	UniqueViolation             Code = "P2011"
	DataValidationError         Code = "P2012"
	InputValueTooLong           Code = "P2013"
	InputValueTooShort          Code = "P2014"
	RequiredFieldMissing        Code = "P2015"
	InvalidCursorValue          Code = "P2016"
	InvalidDateTimeValue        Code = "P2017"
	InvalidEnumValue            Code = "P2018"
	InvalidNumericValue         Code = "P2019"
	InvalidRelationValue        Code = "P2020"
	InvalidSelectOrIncludeValue Code = "P2021"
	InvalidOrderByValue         Code = "P2022"
	InvalidWhereValue           Code = "P2023"
	InvalidCursor               Code = "P2024"
	InvalidBatchPayload         Code = "P2025"
	InvalidOrderBy              Code = "P2026"
	InvalidIncludeValue         Code = "P2027"
	InvalidSelectValue          Code = "P2028"
	InvalidWhere                Code = "P2029"
	InvalidDistinctValue        Code = "P2030"
	InvalidGroupByValue         Code = "P2031"
	InvalidHavingValue          Code = "P2032"
	InvalidLimitValue           Code = "P2033"
	InvalidSkipValue            Code = "P2034"
)

// Mapping is one row of the translation table.
type Mapping struct {
	Code    Code
	Status  int
	Message string
}

// mappings is the ordered translation table. It is read-only after init.
var mappings = []Mapping{
	{InitializationFailed, http.StatusInternalServerError, "Prisma Client initialization failed."},
	{NotConnected, http.StatusInternalServerError, "Prisma Client is not connected to the database."},
	{AuthenticationFailed, http.StatusConflict, "Prisma Client failed to authenticate against the database."},
	{ConnectionFailed, http.StatusBadRequest, "Prisma Client failed to connect to the database."},
	{QueryFailed, http.StatusInternalServerError, "Prisma Client query execution failed."},
	{TransactionFailed, http.StatusInternalServerError, "Prisma Client transaction query execution failed."},
	{RecordNotFound, http.StatusNotFound, "Prisma Client record not found."},
	{InvalidInputValue, http.StatusBadRequest, "Prisma Client invalid input value."},
	{PermissionDenied, http.StatusForbidden, "Prisma Client permission denied."},
	{AuthenticationRequired, http.StatusUnauthorized, "Prisma Client authentication required."},
	{ForeignKeyViolation, http.StatusBadRequest, "Prisma Client foreign key constraint violation."},
	{UniqueViolation, http.StatusBadRequest, "Prisma Client unique constraint violation."},
	{DataValidationError, http.StatusBadRequest, "Prisma Client data validation error."},
	{InputValueTooLong, http.StatusBadRequest, "Prisma Client input value too long."},
	{InputValueTooShort, http.StatusBadRequest, "Prisma Client input value too short."},
	{RequiredFieldMissing, http.StatusBadRequest, "Prisma Client required field missing."},
	{InvalidCursorValue, http.StatusBadRequest, "Prisma Client invalid cursor value."},
	{InvalidDateTimeValue, http.StatusBadRequest, "Prisma Client invalid date or time value."},
	{InvalidEnumValue, http.StatusBadRequest, "Prisma Client invalid enum value."},
	{InvalidNumericValue, http.StatusBadRequest, "Prisma Client invalid numeric value."},
	{InvalidRelationValue, http.StatusBadRequest, "Prisma Client invalid relation value."},
	{InvalidSelectOrIncludeValue, http.StatusBadRequest, "Prisma Client invalid select or include value."},
	{InvalidOrderByValue, http.StatusBadRequest, "Prisma Client invalid orderBy value."},
	{InvalidWhereValue, http.StatusBadRequest, "Prisma Client invalid where value."},
	{InvalidCursor, http.StatusBadRequest, "Prisma Client invalid cursor value."},
	{InvalidBatchPayload, http.StatusBadRequest, "Prisma Client invalid batch payload."},
	{InvalidOrderBy, http.StatusBadRequest, "Prisma Client invalid orderBy value."},
	{InvalidIncludeValue, http.StatusBadRequest, "Prisma Client invalid include value."},
	{InvalidSelectValue, http.StatusBadRequest, "Prisma Client invalid select value."},
	{InvalidWhere, http.StatusBadRequest, "Prisma Client invalid where value."},
	{InvalidDistinctValue, http.StatusBadRequest, "Prisma Client invalid distinct value."},
	{InvalidGroupByValue, http.StatusBadRequest, "Prisma Client invalid groupBy value."},
	{InvalidHavingValue, http.StatusBadRequest, "Prisma Client invalid having value."},
	{InvalidLimitValue, http.StatusBadRequest, "Prisma Client invalid limit value."},
	{InvalidSkipValue, http.StatusBadRequest, "Prisma Client invalid skip value."},
}

var mappingsByCode = func() map[Code]Mapping {
	m := make(map[Code]Mapping, len(mappings))
	for _, mapping := range mappings {
		m[mapping.Code] = mapping
	}
	return m
}()

// Lookup returns the table row for code.
func Lookup(code Code) (Mapping, bool) {
	m, ok := mappingsByCode[code]
	return m, ok
}

// Mappings returns a copy of the translation table in declaration order.
func Mappings() []Mapping {
	out := make([]Mapping, len(mappings))
	copy(out, mappings)
	return out
}

// IsKnown reports whether code has an entry in the translation table.
func (c Code) IsKnown() bool {
	_, ok := mappingsByCode[c]
	return ok
}
