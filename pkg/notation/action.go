package notation

// Action is the terminal action of a token, stored as its notation letter.
type Action byte

const (
	Attack Action = 'a'
	Move   Action = 'm'
	Jump   Action = 'j'
	Charge Action = 'c'
	Block  Action = 'b'
)

var actionNames = map[Action]string{
	Attack: "attack",
	Move:   "move",
	Jump:   "jump",
	Charge: "charge",
	Block:  "block",
}

// ParseAction returns the action for a notation letter. Only the lowercase
// letters a, m, j, c and b are actions.
func ParseAction(b byte) (Action, bool) {
	a := Action(b)
	_, ok := actionNames[a]
	return a, ok
}

// Letter returns the single-letter notation of a.
func (a Action) Letter() string {
	return string(rune(a))
}

// String returns the action name ("attack", "block", ...).
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}
