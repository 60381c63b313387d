package component

// Cue identifies a synthesized sound effect.
type Cue uint8

const (
	CueNone Cue = iota
	CueBlip
	CueError
	CueChime
)

// AudioTriggerComponent requests a one-shot sound cue. The audio system
// plays the cue and removes the component in the same frame, so a trigger
// fires exactly once.
type AudioTriggerComponent struct {
	Cue Cue
}
