// SPDX-License-Identifier: Apache-2.0

package models

// Pet is a single record in a user's pet collection.
// Each pet carries a stable unique ID assigned at creation time; slice order
// within the collection is the display order and nothing more. Operations
// address pets by ID, never by position.
type Pet struct {
	// ID is the unique identifier of the pet, assigned at creation.
	ID string `json:"id"`

	// Name is the pet's given name.
	Name string `json:"name"`

	// Species is the kind of animal (e.g. "perro", "gato").
	Species string `json:"species"`

	// Breed is the pet's breed, free text.
	Breed string `json:"breed"`

	// Age is the pet's age as entered by the user. Kept as free text because
	// the UI accepts values like "3" or "3 meses".
	Age string `json:"age"`

	// ImageRef is a reference (path or URL) to the pet's picture.
	ImageRef string `json:"image_ref"`

	// History is the ordered medical history of the pet. Entries are only
	// appended or removed, never edited in place.
	History []HistoryEntry `json:"history"`
}

// HistoryEntry is one free-text line of a pet's medical history.
type HistoryEntry struct {
	// ID is the unique identifier of the entry, assigned at creation.
	ID string `json:"id"`

	// Text is the free-text content of the entry.
	Text string `json:"text"`
}
