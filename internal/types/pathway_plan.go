package types

// SkillGaps partitions a student's missing skills for a career into what to
// work on now versus over the longer term.
type SkillGaps struct {
	Immediate []string `json:"immediate"`
	LongTerm  []string `json:"long_term"`
}

// PathwayPlan is the ordered academic/career roadmap for one career. It is
// derived deterministically from a (Career, StudentProfile) pair.
type PathwayPlan struct {
	Steps     []string  `json:"steps"`
	Timeline  string    `json:"timeline"`
	SkillGaps SkillGaps `json:"skill_gaps"`
}
