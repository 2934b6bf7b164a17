package menu

import (
	"reflect"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestMainDeterministic(t *testing.T) {
	first := Main("Flack")
	second := Main("Flack")

	if !reflect.DeepEqual(first, second) {
		t.Error("Main() built structurally different trees across calls")
	}
}

func TestMainStructure(t *testing.T) {
	root := Main("Flack")

	groupLabels := make([]string, 0, len(root.Children))
	for _, g := range root.Children {
		if g.Children == nil {
			t.Errorf("top-level entry %q is not a group", g.Label)
		}
		groupLabels = append(groupLabels, g.Label)
	}
	wantLabels := []string{"Flack", "Edit", "Window"}
	if !reflect.DeepEqual(groupLabels, wantLabels) {
		t.Fatalf("group labels = %v, want %v", groupLabels, wantLabels)
	}

	type entry struct {
		kind Kind
		sep  bool
	}
	flatten := func(g Node) []entry {
		out := make([]entry, 0, len(g.Children))
		for _, c := range g.Children {
			out = append(out, entry{c.Kind, c.Separator})
		}
		return out
	}

	wantApp := []entry{{About, false}, {None, true}, {Quit, false}}
	if got := flatten(root.Children[0]); !reflect.DeepEqual(got, wantApp) {
		t.Errorf("app group = %v, want %v", got, wantApp)
	}

	wantEdit := []entry{
		{Undo, false}, {Redo, false}, {None, true},
		{Cut, false}, {Copy, false}, {Paste, false}, {SelectAll, false},
	}
	if got := flatten(root.Children[1]); !reflect.DeepEqual(got, wantEdit) {
		t.Errorf("edit group = %v, want %v", got, wantEdit)
	}

	wantWindow := []entry{{Minimize, false}, {Maximize, false}, {None, true}, {Close, false}}
	if got := flatten(root.Children[2]); !reflect.DeepEqual(got, wantWindow) {
		t.Errorf("window group = %v, want %v", got, wantWindow)
	}

	if zoom := root.Children[2].Children[1]; zoom.Label != "Zoom" {
		t.Errorf("maximize label = %q, want %q", zoom.Label, "Zoom")
	}
}

func TestInstallTranslation(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()
	win := test.NewWindow(nil)

	if err := Install(a, win, Main("Flack")); err != nil {
		t.Fatalf("Install() error = %v", err)
	}

	mainMenu := win.MainMenu()
	if mainMenu == nil {
		t.Fatal("window has no main menu after Install")
	}
	if len(mainMenu.Items) != 3 {
		t.Fatalf("menu count = %d, want 3", len(mainMenu.Items))
	}

	appMenu := mainMenu.Items[0]
	if appMenu.Label != "Flack" {
		t.Errorf("first menu label = %q, want %q", appMenu.Label, "Flack")
	}
	if len(appMenu.Items) != 3 {
		t.Fatalf("app menu item count = %d, want 3", len(appMenu.Items))
	}
	if !appMenu.Items[1].IsSeparator {
		t.Error("second app menu item is not a separator")
	}
	if !appMenu.Items[2].IsQuit {
		t.Error("quit item is not flagged IsQuit")
	}
	if appMenu.Items[2].Label != "Quit Flack" {
		t.Errorf("quit label = %q, want %q", appMenu.Items[2].Label, "Quit Flack")
	}

	editMenu := mainMenu.Items[1]
	if len(editMenu.Items) != 7 {
		t.Errorf("edit menu item count = %d, want 7", len(editMenu.Items))
	}
	for _, item := range editMenu.Items {
		if !item.IsSeparator && item.Action == nil {
			t.Errorf("edit item %q has no action", item.Label)
		}
	}
}

func TestInstallRejectsMalformedTrees(t *testing.T) {
	a := test.NewApp()
	defer test.NewApp()
	win := test.NewWindow(nil)

	cases := []struct {
		name string
		root Node
	}{
		{"empty bar", Group("")},
		{"leaf at top level", Group("", Action(Quit, "Quit"))},
		{"unmapped kind", Group("", Group("Edit", Action(None, "Mystery")))},
		{"nested group", Group("", Group("Edit", Group("More", Action(Copy, "Copy"))))},
	}
	for _, tc := range cases {
		if err := Install(a, win, tc.root); err == nil {
			t.Errorf("%s: Install() error = nil, want error", tc.name)
		}
	}
}
