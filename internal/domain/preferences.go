package domain

// Preferences is a user's stated learning profile: what they want to
// learn, how experienced they are, how much time they have, and why
// they are learning. A record is either fully populated or absent;
// Validate is the single gate between the two.
type Preferences struct {
	Interests      []string `json:"interests"`
	SkillLevel     string   `json:"skillLevel"`
	TimeCommitment string   `json:"timeCommitment"`
	LearningGoal   string   `json:"learningGoal"`
}

// Allowed values for the enumerated Preferences fields.
const (
	SkillBeginner     = "beginner"
	SkillIntermediate = "intermediate"
	SkillAdvanced     = "advanced"

	TimeUnderFive   = "0-5"
	TimeFiveToTen   = "5-10"
	TimeTenToTwenty = "10-20"
	TimeTwentyPlus  = "20+"

	GoalSkillUpgrade  = "skill-upgrade"
	GoalCareerChange  = "career-change"
	GoalCertification = "certification"
	GoalHobby         = "hobby"
	GoalExploration   = "exploration"
)

// SkillLevels lists the accepted skill levels in display order.
func SkillLevels() []string {
	return []string{SkillBeginner, SkillIntermediate, SkillAdvanced}
}

// TimeCommitments lists the accepted weekly-hours buckets in display order.
func TimeCommitments() []string {
	return []string{TimeUnderFive, TimeFiveToTen, TimeTenToTwenty, TimeTwentyPlus}
}

// LearningGoals lists the accepted learning goals in display order.
func LearningGoals() []string {
	return []string{GoalSkillUpgrade, GoalCareerChange, GoalCertification, GoalHobby, GoalExploration}
}

// Normalize returns a copy with interests deduplicated, preserving
// first-seen order. Blank entries are dropped.
func (p Preferences) Normalize() Preferences {
	seen := make(map[string]bool, len(p.Interests))
	interests := make([]string, 0, len(p.Interests))
	for _, in := range p.Interests {
		if in == "" || seen[in] {
			continue
		}
		seen[in] = true
		interests = append(interests, in)
	}
	p.Interests = interests
	return p
}

// Validate reports whether the record is complete: every field present
// and every enumerated field within its allowed set. The first failing
// field is named in the returned ValidationError.
func (p Preferences) Validate() error {
	if len(p.Interests) == 0 {
		return &ValidationError{Field: "interests", Reason: "must not be empty"}
	}
	for _, in := range p.Interests {
		if in == "" {
			return &ValidationError{Field: "interests", Reason: "must not contain blank entries"}
		}
	}
	if !contains(SkillLevels(), p.SkillLevel) {
		return &ValidationError{Field: "skillLevel", Reason: "must be one of beginner, intermediate, advanced"}
	}
	if !contains(TimeCommitments(), p.TimeCommitment) {
		return &ValidationError{Field: "timeCommitment", Reason: "must be one of 0-5, 5-10, 10-20, 20+"}
	}
	if !contains(LearningGoals(), p.LearningGoal) {
		return &ValidationError{Field: "learningGoal", Reason: "must be a recognized learning goal"}
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
