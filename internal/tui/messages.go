package tui

import "github.com/JoyOffere/linear-regression-model/internal/submission"

// submissionMsg carries a controller state snapshot into the update
// loop.
type submissionMsg submission.State
