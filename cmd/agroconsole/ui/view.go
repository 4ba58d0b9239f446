package ui

import (
	"strings"

	"github.com/ipa-agro/agromanager/internal/controller"
)

// renderNotice renders the page's single banner, empty when there is none.
func renderNotice(styles Styles, notice *controller.Notice) string {
	if notice == nil {
		return ""
	}
	if notice.Kind == controller.NoticeSuccess {
		return styles.Success.Render(notice.Text)
	}
	return styles.Error.Render(notice.Text)
}

// joinSections stacks non-empty sections with blank lines between them.
func joinSections(sections ...string) string {
	parts := make([]string, 0, len(sections))
	for _, section := range sections {
		if section != "" {
			parts = append(parts, section)
		}
	}
	return strings.Join(parts, "\n\n") + "\n"
}
