package engine

import (
	"fmt"
	"strings"
)

// ArticleCategory is a knowledge area with its own read counter.
type ArticleCategory string

const (
	CategoryMental    ArticleCategory = "mental"
	CategorySocial    ArticleCategory = "social"
	CategoryEmotional ArticleCategory = "emotional"
	CategoryGoal      ArticleCategory = "goal"
)

func (c ArticleCategory) IsValid() bool {
	switch c {
	case CategoryMental, CategorySocial, CategoryEmotional, CategoryGoal:
		return true
	default:
		return false
	}
}

// ParseArticleCategory parses user input to an ArticleCategory.
// Supported: mental, social, emotional, goal (plus a few aliases).
func ParseArticleCategory(input string) (ArticleCategory, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "mental", "mind":
		return CategoryMental, nil
	case "social":
		return CategorySocial, nil
	case "emotional", "emotion":
		return CategoryEmotional, nil
	case "goal", "goals":
		return CategoryGoal, nil
	default:
		return "", fmt.Errorf("invalid article category: %q", input)
	}
}

// FocusKind distinguishes the two focus session lengths.
type FocusKind string

const (
	FocusDeep  FocusKind = "deep"
	FocusQuick FocusKind = "quick"
)

func (k FocusKind) IsValid() bool {
	return k == FocusDeep || k == FocusQuick
}

func ParseFocusKind(input string) (FocusKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	k := FocusKind(s)
	if !k.IsValid() {
		return "", fmt.Errorf("invalid focus kind: %q (deep|quick)", input)
	}
	return k, nil
}
