// Package articleprops holds the catalog of presentation options offered by
// the reader settings panel and the default combination applied on start-up.
//
// The catalog is read-only: list accessors return copies and the default
// state is handed out by value.
package articleprops

import (
	"fmt"
	"slices"
)

// Option is one selectable value for a field.
type Option struct {
	Title     string
	Value     string
	ClassName string
}

// Field names one of the five presentation settings.
type Field int

const (
	FontFamily Field = iota
	FontSize
	FontColor
	BackgroundColor
	ContentWidth
)

var fieldNames = [...]string{
	FontFamily:      "fontFamily",
	FontSize:        "fontSize",
	FontColor:       "fontColor",
	BackgroundColor: "backgroundColor",
	ContentWidth:    "contentWidth",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// Fields returns every field in display order.
func Fields() []Field {
	return []Field{FontFamily, FontSize, FontColor, BackgroundColor, ContentWidth}
}

// ArticleState is the set of options currently chosen for an article.
type ArticleState struct {
	FontFamily      Option
	FontSize        Option
	FontColor       Option
	BackgroundColor Option
	ContentWidth    Option
}

var (
	fontFamilyOptions = []Option{
		{Title: "Open Sans", Value: "Open Sans", ClassName: "open-sans"},
		{Title: "Ubuntu", Value: "Ubuntu", ClassName: "ubuntu"},
		{Title: "Cormorant Garamond", Value: "Cormorant Garamond", ClassName: "cormorant-garamond"},
		{Title: "Days One", Value: "Days One", ClassName: "days-one"},
		{Title: "Merriweather", Value: "Merriweather", ClassName: "merriweather"},
	}

	fontSizeOptions = []Option{
		{Title: "18px", Value: "18px", ClassName: "font-size-18"},
		{Title: "25px", Value: "25px", ClassName: "font-size-25"},
		{Title: "38px", Value: "38px", ClassName: "font-size-38"},
	}

	fontColors = []Option{
		{Title: "黒", Value: "#000000", ClassName: "font-black"},
		{Title: "白", Value: "#FFFFFF", ClassName: "font-white"},
		{Title: "灰色", Value: "#C4C4C4", ClassName: "font-gray"},
		{Title: "ピンク", Value: "#FEAFE8", ClassName: "font-pink"},
		{Title: "ローズ", Value: "#FD24AF", ClassName: "font-rose"},
		{Title: "黄色", Value: "#FFC802", ClassName: "font-yellow"},
		{Title: "緑", Value: "#80D994", ClassName: "font-green"},
		{Title: "青", Value: "#6FC1FD", ClassName: "font-blue"},
		{Title: "紫", Value: "#5F47E0", ClassName: "font-purple"},
		{Title: "ベージュ", Value: "#D7B28A", ClassName: "font-beige"},
	}

	backgroundColors = []Option{
		{Title: "白", Value: "#FFFFFF", ClassName: "bg-white"},
		{Title: "黒", Value: "#000000", ClassName: "bg-black"},
		{Title: "灰色", Value: "#C4C4C4", ClassName: "bg-gray"},
		{Title: "ピンク", Value: "#FEAFE8", ClassName: "bg-pink"},
		{Title: "ローズ", Value: "#FD24AF", ClassName: "bg-rose"},
		{Title: "黄色", Value: "#FFC802", ClassName: "bg-yellow"},
		{Title: "緑", Value: "#80D994", ClassName: "bg-green"},
		{Title: "青", Value: "#6FC1FD", ClassName: "bg-blue"},
		{Title: "紫", Value: "#5F47E0", ClassName: "bg-purple"},
		{Title: "ベージュ", Value: "#D7B28A", ClassName: "bg-beige"},
	}

	contentWidthOptions = []Option{
		{Title: "ワイド", Value: "1394px", ClassName: "width-wide"},
		{Title: "ナロー", Value: "948px", ClassName: "width-narrow"},
	}
)

// FontFamilyOptions returns the selectable font families.
func FontFamilyOptions() []Option { return slices.Clone(fontFamilyOptions) }

// FontSizeOptions returns the selectable font sizes.
func FontSizeOptions() []Option { return slices.Clone(fontSizeOptions) }

// FontColors returns the selectable text colors.
func FontColors() []Option { return slices.Clone(fontColors) }

// BackgroundColors returns the selectable background colors.
func BackgroundColors() []Option { return slices.Clone(backgroundColors) }

// ContentWidthOptions returns the selectable content widths.
func ContentWidthOptions() []Option { return slices.Clone(contentWidthOptions) }

// Default returns the combination used before the user applies anything.
func Default() ArticleState {
	return ArticleState{
		FontFamily:      fontFamilyOptions[0],
		FontSize:        fontSizeOptions[0],
		FontColor:       fontColors[0],
		BackgroundColor: backgroundColors[0],
		ContentWidth:    contentWidthOptions[0],
	}
}

// Options returns the catalog list backing the field.
func (f Field) Options() []Option {
	switch f {
	case FontFamily:
		return FontFamilyOptions()
	case FontSize:
		return FontSizeOptions()
	case FontColor:
		return FontColors()
	case BackgroundColor:
		return BackgroundColors()
	case ContentWidth:
		return ContentWidthOptions()
	default:
		return nil
	}
}

// Lookup finds the catalog option of a field by its underlying value.
func Lookup(f Field, value string) (Option, bool) {
	for _, opt := range f.Options() {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Get returns the option stored for the field.
func (s ArticleState) Get(f Field) Option {
	switch f {
	case FontFamily:
		return s.FontFamily
	case FontSize:
		return s.FontSize
	case FontColor:
		return s.FontColor
	case BackgroundColor:
		return s.BackgroundColor
	case ContentWidth:
		return s.ContentWidth
	default:
		return Option{}
	}
}

// With returns a copy of s with the field replaced. Unknown fields leave the
// state untouched.
func (s ArticleState) With(f Field, opt Option) ArticleState {
	switch f {
	case FontFamily:
		s.FontFamily = opt
	case FontSize:
		s.FontSize = opt
	case FontColor:
		s.FontColor = opt
	case BackgroundColor:
		s.BackgroundColor = opt
	case ContentWidth:
		s.ContentWidth = opt
	}
	return s
}

// Validate reports the first field whose option is not part of the catalog.
func (s ArticleState) Validate() error {
	for _, f := range Fields() {
		if !slices.Contains(f.Options(), s.Get(f)) {
			return fmt.Errorf("%s: %q is not a catalog option", f, s.Get(f).Value)
		}
	}
	return nil
}
