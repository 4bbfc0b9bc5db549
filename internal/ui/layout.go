package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the width below which the Notes column is hidden.
	LayoutCompactWidth = 90

	// MembersPaneMinWidth and MembersPaneMaxWidth bound the member list.
	MembersPaneMinWidth = 20
	MembersPaneMaxWidth = 32
)

// Form geometry.
const (
	// NotesRows is the height of the notes textarea.
	NotesRows = 4

	// FormLabelWidth is the column reserved for field labels.
	FormLabelWidth = 10
)

// Log overlay limits.
const (
	// LogTailLimit is the number of diagnostic log lines shown in the overlay.
	LogTailLimit = 500
)

// Timing constants.
const (
	// NoticeTimeout is how long a success or error notice stays in the header.
	NoticeTimeout = 6 * time.Second
)
