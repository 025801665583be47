// Package models defines the core domain models for EcoTracker.
//
// # Models
//
//   - User: a registered account as stored in the users record (plaintext password).
//   - Profile: the password-free subset of User that represents the active session.
//   - Entry: one logged waste item (category, item name, quantity, day, owner).
//   - Category: the closed set Recyclable, Compostable, Landfill.
//
// # Persistence shape
//
// JSON tags mirror the records the browser dashboard kept in
// localStorage (camelCase itemName/userId), so an exported value from that
// app can be loaded unchanged.
//
// # Design Principles
//
//  1. Entries reference their owner by ID string only; no foreign key is enforced.
//  2. Entries are immutable once created. There is no update or delete path.
//  3. Dates are calendar days ("2006-01-02"), never timestamps.
package models
