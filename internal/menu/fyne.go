package menu

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

// Install translates a descriptor tree into a Fyne main menu and attaches it
// to the window. Top-level children of the root must all be groups. A
// descriptor the installer cannot translate is a startup error.
func Install(app fyne.App, win fyne.Window, root Node) error {
	mainMenu, err := translate(app, win, root)
	if err != nil {
		return err
	}
	win.SetMainMenu(mainMenu)
	return nil
}

func translate(app fyne.App, win fyne.Window, root Node) (*fyne.MainMenu, error) {
	if len(root.Children) == 0 {
		return nil, fmt.Errorf("menu: empty menu bar")
	}

	menus := make([]*fyne.Menu, 0, len(root.Children))
	for _, group := range root.Children {
		if group.Children == nil {
			return nil, fmt.Errorf("menu: top-level entry %q is not a group", group.Label)
		}
		items := make([]*fyne.MenuItem, 0, len(group.Children))
		for _, child := range group.Children {
			item, err := translateItem(app, win, child)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		menus = append(menus, fyne.NewMenu(group.Label, items...))
	}
	return fyne.NewMainMenu(menus...), nil
}

func translateItem(app fyne.App, win fyne.Window, node Node) (*fyne.MenuItem, error) {
	if node.Separator {
		return fyne.NewMenuItemSeparator(), nil
	}
	if node.Children != nil {
		return nil, fmt.Errorf("menu: nested group %q not supported by the shell menu bar", node.Label)
	}

	action, err := actionFor(app, win, node.Kind)
	if err != nil {
		return nil, err
	}

	item := fyne.NewMenuItem(node.Label, action)
	if node.Kind == Quit {
		// Marking the item keeps Fyne from appending its own Quit entry.
		item.IsQuit = true
	}
	return item, nil
}

func actionFor(app fyne.App, win fyne.Window, kind Kind) (func(), error) {
	switch kind {
	case About:
		return func() {
			meta := app.Metadata()
			dialog.ShowInformation(meta.Name, "Version "+meta.Version, win)
		}, nil
	case Quit:
		return app.Quit, nil
	case Undo:
		return func() { dispatchShortcut(win, &fyne.ShortcutUndo{}) }, nil
	case Redo:
		return func() { dispatchShortcut(win, &fyne.ShortcutRedo{}) }, nil
	case Cut:
		return func() { dispatchShortcut(win, &fyne.ShortcutCut{}) }, nil
	case Copy:
		return func() { dispatchShortcut(win, &fyne.ShortcutCopy{}) }, nil
	case Paste:
		return func() { dispatchShortcut(win, &fyne.ShortcutPaste{}) }, nil
	case SelectAll:
		return func() { dispatchShortcut(win, &fyne.ShortcutSelectAll{}) }, nil
	case Minimize:
		// Fyne has no programmatic minimize; hiding is the closest the
		// toolkit offers.
		return win.Hide, nil
	case Maximize:
		return func() { win.SetFullScreen(!win.FullScreen()) }, nil
	case Close:
		return win.Close, nil
	default:
		return nil, fmt.Errorf("menu: no action for kind %q", kind)
	}
}

// dispatchShortcut routes an edit action to whichever canvas object has
// focus, attaching the window clipboard where the shortcut carries one.
func dispatchShortcut(win fyne.Window, s fyne.Shortcut) {
	switch sh := s.(type) {
	case *fyne.ShortcutCut:
		sh.Clipboard = win.Clipboard()
	case *fyne.ShortcutCopy:
		sh.Clipboard = win.Clipboard()
	case *fyne.ShortcutPaste:
		sh.Clipboard = win.Clipboard()
	}
	if focused, ok := win.Canvas().Focused().(fyne.Shortcutable); ok {
		focused.TypedShortcut(s)
	}
}
