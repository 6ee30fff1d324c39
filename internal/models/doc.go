// Package models defines the core domain types for the contact book.
//
// # Field Values
//
// Every field a contact carries is a validated value type:
//   - Name: the contact's display name, non-empty; also the unique key in
//     the address book
//   - Phone: a phone number, exactly 10 ASCII digits, no separators
//   - Birthday: a calendar date, parsed strictly from DD.MM.YYYY input
//
// Each type is constructed through a New* function that validates the raw
// input. There is no way to hold an invalid Phone or Birthday value.
//
// # Record
//
// Record represents one contact: a Name, an ordered list of Phones
// (duplicates allowed) and an optional Birthday. Mutation goes through
// methods that validate before touching state, so a failed mutation never
// leaves the record half-changed.
//
// # Design Principles
//
// 1. **Constructor-time validation**: invalid input fails construction
// 2. **No partial mutation**: validation errors leave the record untouched
// 3. **Closed type set**: the field kinds are fixed and known at compile
// time, so no runtime polymorphism is needed over them
package models
