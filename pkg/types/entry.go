package types

// Action classifies what a cleanup script plans to do with a path.
type Action string

const (
	// ActionRemove marks a path the script will delete
	ActionRemove Action = "remove"
	// ActionKeep marks a path the script preserves as the original
	ActionKeep Action = "keep"
)

// Entry represents one planned operation parsed from a cleanup script.
type Entry struct {
	Path      string `json:"path" yaml:"path"`
	Action    Action `json:"action" yaml:"action"`
	Size      uint64 `json:"size" yaml:"size"`
	Protected bool   `json:"protected,omitempty" yaml:"protected,omitempty"`
}
