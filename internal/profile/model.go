package profile

// Document is a user profile as produced by the text-to-profile model call.
// Its shape is not fixed; anything downstream must tolerate arbitrary nesting.
type Document map[string]any
