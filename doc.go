// Package extgrid formats GORM query results for ExtJS stores and forms.
//
// Overview
//
// An ExtJS store reads rows from a JSON envelope of the form
//
//	{"total": 42, "data": [...], "metaData": {"root": "data", "fields": [...], ...}}
//
// and pages through it with "start" and "limit" parameters sent by a paging
// toolbar. Formatter builds this envelope:
//   - Orderings come from a SortMapping whitelist. Unknown sort keys fall back
//     to DefaultOrder, group keys are placed in front of the sort key.
//   - A positive limit (or per page value) selects a single page, the total is
//     then counted across all pages.
//   - Every record is projected into a Row through FieldDescriptors. Time
//     values are rendered with TimestampLayout.
//
// Validation errors of a record are translated with FirstError, AllErrors and
// FormFailure into the messages an ExtJS form displays.
//
// Data access goes through a Provider. GormProvider implements it over *gorm.DB.
package extgrid
