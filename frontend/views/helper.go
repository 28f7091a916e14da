package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/networkteam/coursefront/catalog"
)

// Safe for concurrent use, Sprintf allocates its own state.
var printer = message.NewPrinter(language.English)

// formatCount formats a number with thousands separators.
func formatCount[N int | int64](n N) string {
	return printer.Sprintf("%d", n)
}

func formatDurationSince(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	if d < 0 {
		return "in the future"
	}
	if d < time.Minute {
		return fmt.Sprintf("%d seconds ago", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	}
	if d < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(d.Hours()))
	}
	return fmt.Sprintf("%d days ago", int(d.Hours()/24))
}

// formatPrice formats a price with two decimals, "free" for zero.
func formatPrice(price json.Number) string {
	if price == "" {
		return ""
	}
	f, err := price.Float64()
	if err != nil {
		return price.String()
	}
	if f == 0 {
		return "free"
	}
	return printer.Sprintf("%.2f", f)
}

// formatCourseDuration renders seconds or ISO-8601 durations like "1h30m0s".
func formatCourseDuration(d catalog.Duration) string {
	if d == "" {
		return ""
	}
	if secs, err := strconv.ParseFloat(string(d), 64); err == nil {
		return (time.Duration(secs * float64(time.Second))).Round(time.Second).String()
	}
	if parsed, err := time.ParseDuration(strings.ToLower(strings.TrimPrefix(string(d), "PT"))); err == nil {
		return parsed.String()
	}
	return string(d)
}

// prettyJSON indents JSON content, invalid JSON is returned as is.
func prettyJSON(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}
	return buf.String()
}

// highlightContent applies syntax highlighting to the content
func highlightContent(content string, contentType string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		// Split content type before ;
		contentType = strings.Split(contentType, ";")[0]

		lexer := lexers.MatchMimeType(contentType)
		if lexer == nil {
			lexer = lexers.Fallback
		}

		formatter, style := chromaFormatterAndStyle()

		iterator, err := lexer.Tokenise(nil, content)
		if err != nil {
			return err
		}

		return formatter.Format(w, style, iterator)
	})
}

func chromaFormatterAndStyle() (*html.Formatter, *chroma.Style) {
	formatter := html.New(
		html.Standalone(false),
		html.WithClasses(true),
		html.TabWidth(2),
	)

	style := styles.Get("github")
	if style == nil {
		style = styles.Fallback
	}

	return formatter, style
}

func chromaStyles() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<style>")
		formatter, style := chromaFormatterAndStyle()
		err := formatter.WriteCSS(w, style)

		_, _ = io.WriteString(w, ".chroma { white-space: pre-wrap; }\n")
		_, _ = io.WriteString(w, "</style>")
		return err
	})
}
