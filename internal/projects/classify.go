package projects

import (
	"regexp"
	"strings"
)

// Category is the display category a project is filed under.
type Category string

const (
	CategoryComputerVision     Category = "Computer Vision"
	CategoryMachineLearning    Category = "Machine Learning"
	CategoryDataScience        Category = "Data Science"
	CategoryGameDevelopment    Category = "Game Development"
	CategoryOperationsResearch Category = "Operations Research"
	CategoryFullStack          Category = "Full-Stack Development"
)

// categoryRules are tested in order and the first match wins. Computer
// Vision comes before Machine Learning on purpose: CV repositories almost
// always also mention ML keywords (cnn, vision models, etc) and would be
// misfiled if ML were tested first. Short tokens like "cv", "ml" and "ai"
// are word-bounded so that e.g. "html" never reads as machine learning.
var categoryRules = []struct {
	category Category
	pattern  *regexp.Regexp
}{
	{CategoryComputerVision, regexp.MustCompile(`computer.?vision|\bcv\b|yolo|opencv|image.?process|object.?detect|\bcnn\b|convolutional|image.?classif|image.?detect|vision|albumentations|image.?augment|trashnet|garbage.?classif|squat.?analysis|barbell.?track|pose.?estimat|facial.?detect|face.?detect|video.?process|image.?segment`)},
	{CategoryMachineLearning, regexp.MustCompile(`machine.?learning|\bml\b|neural.?network|tensorflow|pytorch|keras|deep.?learning|\bai\b|artificial.?intelligence`)},
	{CategoryDataScience, regexp.MustCompile(`data.?science|data.?analysis|pandas|numpy|jupyter|notebook|visualization|seaborn|matplotlib`)},
	{CategoryGameDevelopment, regexp.MustCompile(`game|gaming|unity|unreal|pygame|tictactoe|blackjack|quiz`)},
	{CategoryOperationsResearch, regexp.MustCompile(`operations.?research|optimization|linear.?programming|genetic.?algorithm|simulation`)},
}

// Classify maps a repository's textual metadata to exactly one category.
// Unmatched input falls through to Full-Stack Development.
func Classify(name, description string, topics []string, language string) Category {
	parts := []string{name, description, strings.Join(topics, " "), language}
	blob := strings.ToLower(strings.Join(parts, " "))

	for _, rule := range categoryRules {
		if rule.pattern.MatchString(blob) {
			return rule.category
		}
	}
	return CategoryFullStack
}

// projectPhrase is the category wording used in templated fallback
// descriptions ("A computer vision project built with ...").
func projectPhrase(c Category) string {
	switch c {
	case CategoryComputerVision:
		return "computer vision"
	case CategoryMachineLearning:
		return "machine learning"
	case CategoryDataScience:
		return "data science"
	case CategoryGameDevelopment:
		return "game development"
	case CategoryOperationsResearch:
		return "operations research"
	default:
		return "full-stack development"
	}
}
