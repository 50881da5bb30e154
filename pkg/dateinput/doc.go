// Package dateinput parses the day, month and year boxes of a GOV.UK date
// input into validated components and converts them to and from model types.
//
// Parsing never fails with a Go error: problems with the submitted values are
// reported through the ParseErrors bit set so callers can build field-level
// messages. Go errors are reserved for wiring mistakes such as registering two
// converters for one type or asking a converter for an item combination it
// does not support.
package dateinput
