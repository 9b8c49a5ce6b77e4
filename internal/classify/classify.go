package classify

// Classify resolves the category for an error: the type classifier runs
// first, the pattern classifier is the fallback on its rendered message, and
// CategoryUnexpected is the final answer when neither matches. Never returns
// more or less than one category.
func Classify(err error) Category {
	if err == nil {
		return CategoryUnexpected
	}
	if c, ok := ClassifyType(err); ok {
		return c
	}
	if c, ok := ClassifyPattern(err.Error()); ok {
		return c
	}
	return CategoryUnexpected
}

// ClassifyMessage resolves the category for a rendered message alone, for
// occurrences reported without a structured error value.
func ClassifyMessage(message string) Category {
	if c, ok := ClassifyPattern(message); ok {
		return c
	}
	return CategoryUnexpected
}
