package cli

import (
	"fmt"
	"io"
	"strings"

	"catalog/internal/client/api"
)

// materialsList splits materialsNeeded into list items: one per line,
// "*" markers stripped, blank lines dropped.
func materialsList(materials string) []string {
	var items []string
	for _, line := range strings.Split(strings.ReplaceAll(materials, "*", ""), "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}

	return items
}

func renderCourse(w io.Writer, course *api.Course, owned bool) {
	fmt.Fprintf(w, "\nCOURSE\n%s\n", course.Title)
	if course.User != nil {
		fmt.Fprintf(w, "By %s\n", course.User.FullName())
	}
	fmt.Fprintf(w, "\n%s\n", course.Description)

	if course.EstimatedTime != "" {
		fmt.Fprintf(w, "\nEstimated Time\n  %s\n", course.EstimatedTime)
	}

	if items := materialsList(course.MaterialsNeeded); len(items) > 0 {
		fmt.Fprintln(w, "\nMaterials Needed")
		for _, item := range items {
			fmt.Fprintf(w, "  - %s\n", item)
		}
	}

	fmt.Fprintln(w)
	if owned {
		fmt.Fprintf(w, "Update Course: /courses/%s/update\n", course.ID)
		fmt.Fprintf(w, "Delete Course: /courses/%s/delete\n", course.ID)
	}
	fmt.Fprintln(w, "Return to List: /")
}

func renderErrors(w io.Writer, errs []string) {
	fmt.Fprintln(w, "Validation Errors")
	for _, e := range errs {
		fmt.Fprintf(w, "  - %s\n", e)
	}
}
