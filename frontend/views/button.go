package views

import (
	"strings"

	"github.com/samber/lo"
)

// ButtonKind is the purpose of a button. Values outside the known kinds are
// accepted and render like ButtonKindDefault.
type ButtonKind string

// StyleClass is the CSS class a button is rendered with.
type StyleClass string

const (
	ButtonKindDefault ButtonKind = "DEFAULT"
	ButtonKindBuy     ButtonKind = "BUY"
	ButtonKindLogIn   ButtonKind = "LOG_IN"
	ButtonKindSignUp  ButtonKind = "SIGN_UP"

	StyleClassDefault StyleClass = "default-button"
	StyleClassBuy     StyleClass = "buy-button"
	StyleClassLogIn   StyleClass = "log-in-button"
	StyleClassSignUp  StyleClass = "sign-up-button"
)

// Read-only after init.
var buttonStyleClasses = map[ButtonKind]StyleClass{
	ButtonKindBuy:    StyleClassBuy,
	ButtonKindLogIn:  StyleClassLogIn,
	ButtonKindSignUp: StyleClassSignUp,
}

// ResolveButtonClass returns the style class for a button kind.
// Every kind maps to exactly one class, unknown kinds to StyleClassDefault.
func ResolveButtonClass(kind ButtonKind) StyleClass {
	if class, ok := buttonStyleClasses[kind]; ok {
		return class
	}
	return StyleClassDefault
}

// ButtonProps configures a Button. The label is passed separately.
type ButtonProps struct {
	Kind ButtonKind
	// Type is the button type attribute, "button" if empty
	Type     string
	Class    string
	Disabled bool
}

func buttonType(props ButtonProps) string {
	if props.Type == "" {
		return "button"
	}
	return props.Type
}

func buttonClasses(props ButtonProps) string {
	return strings.Join(lo.Compact([]string{
		string(ResolveButtonClass(props.Kind)),
		strings.TrimSpace(props.Class),
	}), " ")
}
