package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTitle(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"portfolio":         "Portfolio",
		"my-cool_project":   "My Cool Project",
		"squat_analysis":    "Squat Analysis",
		"barbell-tracker":   "Barbell Tracker",
		"PyDis":             "PyDis", // existing capitals survive
		"already formatted": "Already Formatted",
	}
	for given, expected := range cases {
		assert.Equal(t, expected, FormatTitle(given), given)
	}
}

func TestFormatTitleIdempotent(t *testing.T) {
	inputs := []string{"my-cool_project", "trashnet", "Seas Of Yore"}
	for _, in := range inputs {
		once := FormatTitle(in)
		assert.Equal(t, once, FormatTitle(once), in)
	}
}
