package models

import "fmt"

// VGrades is the Hueco bouldering scale, V0 through V17.
var VGrades = vGrades()

// YDSGrades is the Yosemite Decimal System scale for roped routes,
// with letter sub-grades from 5.10 upward.
var YDSGrades = []string{
	"5.0", "5.1", "5.2", "5.3", "5.4", "5.5", "5.6", "5.7", "5.8", "5.9",
	"5.10a", "5.10b", "5.10c", "5.10d",
	"5.11a", "5.11b", "5.11c", "5.11d",
	"5.12a", "5.12b", "5.12c", "5.12d",
	"5.13a", "5.13b", "5.13c", "5.13d",
	"5.14a", "5.14b", "5.14c", "5.14d",
	"5.15a", "5.15b", "5.15c", "5.15d",
}

func vGrades() []string {
	grades := make([]string, 18)
	for i := range grades {
		grades[i] = fmt.Sprintf("V%d", i)
	}
	return grades
}

// GradesFor returns the ordered grade vocabulary for a category.
// Boulders use the V scale; sport and trad routes use YDS.
func GradesFor(cat Category) []string {
	if cat == CategoryBoulder {
		return VGrades
	}
	return YDSGrades
}

// DefaultGradeFor returns the first entry of the category's vocabulary.
func DefaultGradeFor(cat Category) string {
	return GradesFor(cat)[0]
}
