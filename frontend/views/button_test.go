package views_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/coursefront/frontend/views"
)

func TestResolveButtonClass(t *testing.T) {
	tests := []struct {
		kind views.ButtonKind
		want views.StyleClass
	}{
		{kind: views.ButtonKindBuy, want: "buy-button"},
		{kind: views.ButtonKindLogIn, want: "log-in-button"},
		{kind: views.ButtonKindSignUp, want: "sign-up-button"},
		{kind: views.ButtonKindDefault, want: "default-button"},
		{kind: "", want: "default-button"},
		{kind: "buy", want: "default-button"},
		{kind: " BUY", want: "default-button"},
		{kind: "CHECKOUT", want: "default-button"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, views.ResolveButtonClass(tt.kind))
		})
	}
}

func TestResolveButtonClass_Idempotent(t *testing.T) {
	for _, kind := range []views.ButtonKind{views.ButtonKindBuy, views.ButtonKindLogIn, "unknown"} {
		first := views.ResolveButtonClass(kind)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, views.ResolveButtonClass(kind))
		}
	}
}

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()

	var sb strings.Builder
	require.NoError(t, c.Render(ctx, &sb))
	return sb.String()
}

func TestButton(t *testing.T) {
	got := renderString(t, context.Background(), views.Button(views.ButtonProps{Kind: views.ButtonKindSignUp}, "Sign up"))
	assert.Equal(t, `<button type="button" class="sign-up-button">Sign up</button>`, got)
}

func TestButton_Props(t *testing.T) {
	got := renderString(t, context.Background(), views.Button(views.ButtonProps{
		Kind:     views.ButtonKindBuy,
		Type:     "submit",
		Class:    "wide",
		Disabled: true,
	}, `Buy <now> & "save"`))

	assert.Equal(t, `<button type="submit" class="buy-button wide" disabled>Buy &lt;now&gt; &amp; &#34;save&#34;</button>`, got)
}

func TestButton_UnknownKind(t *testing.T) {
	got := renderString(t, context.Background(), views.Button(views.ButtonProps{Kind: "WISHLIST"}, "Save"))
	assert.Contains(t, got, `class="default-button"`)
}
