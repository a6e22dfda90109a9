// Package models defines the core domain models for Pennywise.
//
// # Entities
//
//   - User: a registered account; the identity behind a caller id.
//   - Group: a named set of people who share expenses and income.
//   - GroupMember: one person in a group, optionally linked to a User.
//   - SplitTransaction: a shared expense or income recorded in a group.
//   - SplitTransactionItem: one member's share of a SplitTransaction.
//   - Notification: an inbox entry created for every member of a new split.
//
// # Money
//
// Amounts are int64 minor units (1/100 of the display currency). Conversion to
// and from decimal strings lives in the money package.
//
// # Enumerations
//
// Role, SplitType, SplitMethod and Direction are closed sets. Use the Parse*
// helpers to turn request strings into values; anything outside the set is
// rejected before it reaches storage.
//
// Relationships are expressed with ID strings rather than pointers.
package models
