package mechanics

// ReferenceFrame is a body-fixed coordinate frame, identified by name.
// Frames carry no state beyond their name and are compared by identity.
type ReferenceFrame struct {
	name string
}

// NewReferenceFrame returns a frame named name; ErrEmptyName if name is "".
func NewReferenceFrame(name string) (*ReferenceFrame, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &ReferenceFrame{name: name}, nil
}

// Name returns the frame name.
func (f *ReferenceFrame) Name() string { return f.name }

// String returns "ReferenceFrame[name]".
func (f *ReferenceFrame) String() string { return "ReferenceFrame[" + f.name + "]" }
