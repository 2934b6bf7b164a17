package menu

// Kind identifies a predefined platform action whose behavior is supplied by
// the host framework rather than by application logic.
type Kind int

const (
	None Kind = iota
	About
	Quit
	Undo
	Redo
	Cut
	Copy
	Paste
	SelectAll
	Minimize
	Maximize
	Close
)

var kindNames = map[Kind]string{
	None:      "none",
	About:     "about",
	Quit:      "quit",
	Undo:      "undo",
	Redo:      "redo",
	Cut:       "cut",
	Copy:      "copy",
	Paste:     "paste",
	SelectAll: "select-all",
	Minimize:  "minimize",
	Maximize:  "maximize",
	Close:     "close",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Node is one entry in the menu descriptor tree: an action leaf, a
// separator, or a group of children shown in display order. The descriptor
// is pure data; translation to the host framework happens in the installer.
type Node struct {
	Kind      Kind
	Label     string
	Separator bool
	Children  []Node
}

func Action(kind Kind, label string) Node {
	return Node{Kind: kind, Label: label}
}

func Separator() Node {
	return Node{Separator: true}
}

func Group(label string, children ...Node) Node {
	return Node{Label: label, Children: children}
}

// Main builds the application's static menu bar: the app group, the edit
// group, and the window group. Construction is deterministic and cannot
// fail; the tree is built once at startup and never mutated.
func Main(appName string) Node {
	return Group("",
		Group(appName,
			Action(About, "About "+appName),
			Separator(),
			Action(Quit, "Quit "+appName),
		),
		Group("Edit",
			Action(Undo, "Undo"),
			Action(Redo, "Redo"),
			Separator(),
			Action(Cut, "Cut"),
			Action(Copy, "Copy"),
			Action(Paste, "Paste"),
			Action(SelectAll, "Select All"),
		),
		Group("Window",
			Action(Minimize, "Minimize"),
			Action(Maximize, "Zoom"),
			Separator(),
			Action(Close, "Close"),
		),
	)
}
