package service

import "github.com/pmendys/course-match/internal/domain"

// QuestionnaireStep is one guided step of the preference
// questionnaire: a prompt and the options the user picks from.
type QuestionnaireStep struct {
	Key     string
	Prompt  string
	Multi   bool
	Options []Option
}

// Option is one selectable answer.
type Option struct {
	Value string
	Label string
}

// interestOptions are the subjects the catalog covers.
var interestOptions = []Option{
	{Value: "Web Development", Label: "Web Development"},
	{Value: "Data Science", Label: "Data Science"},
	{Value: "Machine Learning", Label: "Machine Learning"},
	{Value: "Mobile Development", Label: "Mobile Development"},
	{Value: "Cloud Computing", Label: "Cloud Computing"},
	{Value: "Graphic Design", Label: "Graphic Design"},
	{Value: "Business Finance", Label: "Business Finance"},
	{Value: "Musical Instruments", Label: "Musical Instruments"},
}

// QuestionnaireSteps returns the ordered steps of the questionnaire.
// The first step is a multi-select; the rest pick exactly one value
// from the domain's enumerations.
func QuestionnaireSteps() []QuestionnaireStep {
	return []QuestionnaireStep{
		{
			Key:     "interests",
			Prompt:  "What would you like to learn?",
			Multi:   true,
			Options: interestOptions,
		},
		{
			Key:    "skillLevel",
			Prompt: "What's your current skill level?",
			Options: []Option{
				{Value: domain.SkillBeginner, Label: "Beginner — just starting out"},
				{Value: domain.SkillIntermediate, Label: "Intermediate — comfortable with the basics"},
				{Value: domain.SkillAdvanced, Label: "Advanced — looking to go deeper"},
			},
		},
		{
			Key:    "timeCommitment",
			Prompt: "How many hours per week can you commit?",
			Options: []Option{
				{Value: domain.TimeUnderFive, Label: "Under 5 hours"},
				{Value: domain.TimeFiveToTen, Label: "5–10 hours"},
				{Value: domain.TimeTenToTwenty, Label: "10–20 hours"},
				{Value: domain.TimeTwentyPlus, Label: "More than 20 hours"},
			},
		},
		{
			Key:    "learningGoal",
			Prompt: "What's your main goal?",
			Options: []Option{
				{Value: domain.GoalSkillUpgrade, Label: "Upgrade my current skills"},
				{Value: domain.GoalCareerChange, Label: "Change careers"},
				{Value: domain.GoalCertification, Label: "Earn a certification"},
				{Value: domain.GoalHobby, Label: "Learn for fun"},
				{Value: domain.GoalExploration, Label: "Explore something new"},
			},
		},
	}
}

// BuildPreferences assembles a Preferences record from submitted
// answers, normalizing the interests and validating completeness. It
// returns a ValidationError naming the offending field when the
// record is incomplete.
func BuildPreferences(interests []string, skillLevel, timeCommitment, learningGoal string) (domain.Preferences, error) {
	prefs := domain.Preferences{
		Interests:      interests,
		SkillLevel:     skillLevel,
		TimeCommitment: timeCommitment,
		LearningGoal:   learningGoal,
	}.Normalize()

	if err := prefs.Validate(); err != nil {
		return domain.Preferences{}, err
	}
	return prefs, nil
}
