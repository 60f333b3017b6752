package mobility

import (
	"fmt"
	"strings"
)

// Grade is the service grade held by an officer. Ordered SP > GI > GII > GIII.
type Grade string

const (
	GradeSP   Grade = "SP"
	GradeI    Grade = "GI"
	GradeII   Grade = "GII"
	GradeIII  Grade = "GIII"
	GradeNone Grade = ""
)

var gradeRank = map[Grade]int{
	GradeSP:  4,
	GradeI:   3,
	GradeII:  2,
	GradeIII: 1,
}

// Rank returns a comparable seniority, 0 for unknown grades.
func (g Grade) Rank() int {
	return gradeRank[g]
}

func (g Grade) Valid() bool {
	_, ok := gradeRank[g]
	return ok
}

// Outranks reports whether g is strictly more senior than other.
func (g Grade) Outranks(other Grade) bool {
	return g.Rank() > other.Rank()
}

func ParseGrade(s string) (Grade, error) {
	g := Grade(strings.ToUpper(strings.TrimSpace(s)))
	if !g.Valid() {
		return GradeNone, fmt.Errorf("unknown grade %q", s)
	}
	return g, nil
}
