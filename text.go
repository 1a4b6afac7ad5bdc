package main

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/lipgloss"
)

// cleanText removes markup and entities that occasionally leak into
// provider text and collapses the whitespace they leave behind.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if !strings.ContainsAny(s, "<&") {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// wrapText wraps text to fit within a given width. Words longer than the
// width are broken with a trailing hyphen.
func wrapText(text string, width int) string {
	if width <= 1 {
		return text
	}

	var (
		sb      strings.Builder
		lineLen int
	)
	for _, word := range strings.Fields(text) {
		for lipgloss.Width(word) > width {
			if lineLen > 0 {
				sb.WriteString("\n")
				lineLen = 0
			}
			runes := []rune(word)
			sb.WriteString(string(runes[:width-1]) + "-\n")
			word = string(runes[width-1:])
		}

		w := lipgloss.Width(word)
		switch {
		case lineLen == 0:
		case lineLen+1+w > width:
			sb.WriteString("\n")
			lineLen = 0
		default:
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += w
	}
	return sb.String()
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "(", `\(`, ")", `\)`,
	"<", `\<`, ">", `\>`, "#", `\#`, "!", `\!`,
)

// escapeMarkdown makes provider text safe to embed in generated markdown.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// youtubeURL is the watch page of a trailer key.
func youtubeURL(key string) string {
	return "https://www.youtube.com/watch?v=" + url.QueryEscape(key)
}

// wikipediaURL links a person's name to the Wikipedia edition of lang.
func wikipediaURL(lang, name string) string {
	if lang == "" {
		lang = "en"
	}
	title := strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
	return "https://" + lang + ".wikipedia.org/wiki/" + url.PathEscape(title)
}

// openURL is swapped out in tests.
var openURL = openBrowser

// openBrowser opens a URL in the default browser
func openBrowser(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", etc.
		cmd = "xdg-open"
	}
	args = append(args, url)

	return exec.Command(cmd, args...).Start()
}
