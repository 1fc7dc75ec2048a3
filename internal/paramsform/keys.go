package paramsform

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings understood by the panel.
type KeyMap struct {
	Toggle   key.Binding
	Close    key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Left     key.Binding
	Right    key.Binding
	Apply    key.Binding
	Reset    key.Binding
}

// DefaultKeyMap returns the bindings shown in the viewer's help overlay.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "表示設定パネルの開閉"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "閉じる"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "j"),
			key.WithHelp("tab/↓", "次の項目"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "k"),
			key.WithHelp("shift+tab/↑", "前の項目"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "選択 / ボタン"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "前の値"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "次の値"),
		),
		Apply: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "適用"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "リセット"),
		),
	}
}
