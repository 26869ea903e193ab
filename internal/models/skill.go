package models

// SkillCategory groups skills under a tab in the skills showcase
type SkillCategory struct {
	Category string   `json:"category" yaml:"category"`
	Skills   []string `json:"skills" yaml:"skills"`
}

// SkillList wraps the ordered category table
type SkillList struct {
	Categories []SkillCategory `json:"categories" yaml:"categories"`
}
